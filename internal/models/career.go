package models

// Structures generated by the model for the two planning stages. Field names
// follow the wire format the prompts demand, so the decoded JSON maps 1:1.

type TokenStats struct {
	PromptTokens int32 `json:"promptTokens"`
	OutputTokens int32 `json:"outputTokens"`
	TotalTokens  int32 `json:"totalTokens"`
}

type CurrentPosition struct {
	Title             string   `json:"title"`
	Level             string   `json:"level"`
	Industry          string   `json:"industry"`
	KeyStrengths      []string `json:"key_strengths"`
	YearsOfExperience float64  `json:"years_of_experience"`
}

type TargetAnalysis struct {
	MostAppliedPositions []string `json:"most_applied_positions"`
	TargetIndustries     []string `json:"target_industries"`
	SalaryExpectations   string   `json:"salary_expectations"`
	CommonRequirements   []string `json:"common_requirements"`
}

type GapAnalysis struct {
	MissingSkillsCritical   []string `json:"missing_skills_critical"`
	MissingSkillsNiceToHave []string `json:"missing_skills_nice_to_have"`
	ExperienceGaps          []string `json:"experience_gaps"`
	EducationGaps           []string `json:"education_gaps"`
}

type PositionOption struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	MatchScore      int      `json:"match_score"`
	SalaryRange     string   `json:"salary_range"`
	Difficulty      int      `json:"difficulty"`
	Timeline        string   `json:"timeline"`
	KeyRequirements []string `json:"key_requirements"`
	WhyGoodFit      string   `json:"why_good_fit"`
}

// OverviewAnalysis is the first-stage result: where the user is, where they
// are heading, what is missing, and two positions to choose between.
type OverviewAnalysis struct {
	CurrentPosition CurrentPosition  `json:"current_position"`
	TargetAnalysis  TargetAnalysis   `json:"target_analysis"`
	GapAnalysis     GapAnalysis      `json:"gap_analysis"`
	PositionOptions []PositionOption `json:"position_options"`
}

type Action struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Type              string `json:"type"`
	EstimatedWeeks    int    `json:"estimated_weeks"`
	CostRange         string `json:"cost_range"`
	Priority          string `json:"priority"`
	MeasurableOutcome string `json:"measurable_outcome"`
}

type SkillGap struct {
	SkillName     string   `json:"skill_name"`
	CurrentLevel  string   `json:"current_level"`
	RequiredLevel string   `json:"required_level"`
	GapSize       string   `json:"gap_size"`
	Actions       []Action `json:"actions"`
}

type PreparationPhase struct {
	Title          string     `json:"title"`
	DurationMonths int        `json:"duration_months"`
	SkillGaps      []SkillGap `json:"skill_gaps"`
}

type ApplicationPhase struct {
	Title          string   `json:"title"`
	DurationMonths int      `json:"duration_months"`
	Strategy       []Action `json:"strategy"`
}

type FutureDevelopment struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	NextPosition   string `json:"next_position"`
	TimelineMonths int    `json:"timeline_months"`
	Description    string `json:"description"`
}

type DetailedPlan struct {
	TargetPosition     string              `json:"target_position"`
	EstimatedTimeline  string              `json:"estimated_timeline"`
	SuccessProbability float64             `json:"success_probability"`
	TotalEstimatedCost string              `json:"total_estimated_cost"`
	PreparationPhase   PreparationPhase    `json:"preparation_phase"`
	ApplicationPhase   ApplicationPhase    `json:"application_phase"`
	FutureDevelopment  []FutureDevelopment `json:"future_development"`
}

// DetailedResult is the envelope the second stage must return.
type DetailedResult struct {
	SelectedPosition string       `json:"selected_position"`
	DetailedPlan     DetailedPlan `json:"detailed_plan"`
}
