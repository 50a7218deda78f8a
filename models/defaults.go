// models/defaults.go
package models

// DefaultTrainingPlans returns the starter plans seeded into every new
// account.
func DefaultTrainingPlans() []TrainingPlan {
	return []TrainingPlan{
		{
			ID:       1,
			Name:     "Treino de inferiores",
			Category: "Pernas",
			Type:     "Ficha iniciante",
			Days: []TrainingDay{
				{
					ID:   1,
					XP:   100,
					Name: "Dia 1 - Gluteos e Posterior de Coxa",
					Exercises: []ExerciseSet{
						{Exercise: "Supino reto", Series: 4, Repetitions: "8-12"},
						{Exercise: "Supino inclinado", Series: 4, Repetitions: "8-12"},
						{Exercise: "Supino transversal", Series: 4, Repetitions: "8-12"},
					},
				},
				{
					ID:   2,
					XP:   150,
					Name: "Dia 2 - Quadriceps e Panturrilha",
					Exercises: []ExerciseSet{
						{Exercise: "Supino reto", Series: 4, Repetitions: "8-12"},
						{Exercise: "Supino inclinado", Series: 4, Repetitions: "8-12"},
						{Exercise: "Supino transversal", Series: 4, Repetitions: "8-12"},
					},
				},
			},
		},
		{
			ID:       2,
			Name:     "Treino de superiores",
			Category: "Superiores",
			Type:     "Ficha intermediária",
			Days: []TrainingDay{
				{
					ID:   1,
					XP:   50,
					Name: "Dia 1 - Costas",
					Exercises: []ExerciseSet{
						{Exercise: "Supino reto", Series: 4, Repetitions: "8-12"},
						{Exercise: "Supino inclinado", Series: 4, Repetitions: "8-12"},
						{Exercise: "Supino transversal", Series: 4, Repetitions: "8-12"},
					},
				},
				{
					ID:   2,
					XP:   75,
					Name: "Dia 2 - Ombro",
					Exercises: []ExerciseSet{
						{Exercise: "Supino reto", Series: 4, Repetitions: "8-12"},
						{Exercise: "Supino inclinado", Series: 4, Repetitions: "8-12"},
						{Exercise: "Supino transversal", Series: 4, Repetitions: "8-12"},
					},
				},
			},
		},
	}
}
