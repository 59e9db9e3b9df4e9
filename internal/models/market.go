package models

type PositionFrequency struct {
	Position  string `json:"position"`
	Frequency int    `json:"frequency"`
}

// MarketSnapshot is the per-request aggregation of a user's tracked offers.
// It is derived data, recomputed on every planning request and never persisted.
type MarketSnapshot struct {
	TargetPositions          []PositionFrequency `json:"target_positions"`
	MostRequiredSkills       []string            `json:"most_required_skills"`
	MostRequiredTechnologies []string            `json:"most_required_technologies"`
	ExperienceRequirements   []string            `json:"experience_requirements"`
}
