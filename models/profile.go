// models/profile.go
package models

// Profile carries progression and personal data inside the user
// document. XP historically lives in two places: the top-level field
// written by newer clients and metadados.xp written at registration.
type Profile struct {
	XP       int                    `json:"xp,omitempty"`
	Metadata ProfileMetadata        `json:"metadados"`
	Goals    map[string]interface{} `json:"objetivos,omitempty"`
	Personal Personal               `json:"pessoal"`
}

type ProfileMetadata struct {
	Terms        bool          `json:"termos"`
	RegisteredAt string        `json:"data_cadastro,omitempty"`
	XP           int           `json:"xp"`
	Achievements []Achievement `json:"conquistas"`
}

type Personal struct {
	Name string `json:"nome,omitempty"`
}

// Achievement is a single badge. Achieved-but-unclaimed entries are the
// ones the feed highlights.
type Achievement struct {
	Name     string `json:"name"`
	Achieved bool   `json:"achieved"`
	Claimed  bool   `json:"claimed"`
}

// EffectiveXP resolves the dual-field XP ambiguity: the top-level value
// wins when set, metadados.xp is the fallback, zero otherwise. Every
// XP read in the codebase goes through here.
func (p Profile) EffectiveXP() int {
	if p.XP != 0 {
		return p.XP
	}
	if p.Metadata.XP != 0 {
		return p.Metadata.XP
	}
	return 0
}

// FirstUnclaimedAchievement returns the first achieved and unclaimed
// achievement in stored order, or nil when there is none.
func (p Profile) FirstUnclaimedAchievement() *Achievement {
	for i := range p.Metadata.Achievements {
		a := &p.Metadata.Achievements[i]
		if a.Achieved && !a.Claimed {
			return a
		}
	}
	return nil
}
