// feed/captions.go - motivational caption generator
package feed

import (
	"fmt"
	"math/rand"
)

// DefaultCaptionCategory is the pool used when a plan's category has
// no pool of its own.
const DefaultCaptionCategory = "Cardio"

var captionPools = map[string][]string{
	"Cardio": {
		"Treino de cardio incrível! 🔥 %s concluído com sucesso! #Cardio #Fitness",
		"Mais um dia de cardio! 💪 %s - queimando calorias e construindo resistência! #Motivado",
		"Cardio intenso hoje! 🏃‍♂️ %s - cada gota de suor vale a pena! #Resultados",
	},
	"Pernas": {
		"Treino de pernas épico! 🦵 %s - sentindo cada músculo trabalhando! #Pernas #Força",
		"Inferiores no foco! 💪 %s - construindo pernas de aço! #Treino #Evolução",
		"Pernas de ferro! 🏋️‍♂️ %s - progresso constante é a chave! #Motivado",
	},
	"Superiores": {
		"Superiores no ponto! 💪 %s - força e definição em construção! #Superiores #Fitness",
		"Treino de superiores incrível! 🏋️‍♂️ %s - cada repetição conta! #Força #Progresso",
		"Superiores concluídos! 🔥 %s - evolução constante! #Treino #Resultados",
	},
	"Funcional": {
		"Funcional intenso! 🎯 %s - trabalhando todo o corpo de forma integrada! #Funcional #Saúde",
		"Circuito funcional incrível! 💪 %s - equilíbrio, força e resistência! #Funcional #Completo",
		"Funcional no foco! 🔥 %s - movimento funcional é vida! #Funcional #Fitness",
	},
}

// CaptionGenerator picks a motivational caption for a post. The pick
// function is injectable so tests get deterministic output.
type CaptionGenerator struct {
	pick func(n int) int
}

// NewCaptionGenerator returns a generator backed by math/rand.
func NewCaptionGenerator() *CaptionGenerator {
	return &CaptionGenerator{pick: rand.Intn}
}

// NewCaptionGeneratorWithPick returns a generator with a custom pick
// function. pick receives the pool size and must return [0, n).
func NewCaptionGeneratorWithPick(pick func(n int) int) *CaptionGenerator {
	return &CaptionGenerator{pick: pick}
}

// Generate selects a caption from the category's pool, interpolating
// the weekday name. Unknown categories use the Cardio pool.
func (g *CaptionGenerator) Generate(category, dayName string) string {
	pool, ok := captionPools[category]
	if !ok {
		pool = captionPools[DefaultCaptionCategory]
	}
	return fmt.Sprintf(pool[g.pick(len(pool))], dayName)
}
