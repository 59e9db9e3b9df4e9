package models

type CareerAnalysisRequest struct {
	Step             string `json:"step"`
	SelectedPosition string `json:"selectedPosition"`
}

type CareerProfileSummary struct {
	CVName                string `json:"cvName"`
	TotalOffersCount      int    `json:"totalOffersCount"`
	SentOffersCount       int    `json:"sentOffersCount"`
	InterestedOffersCount int    `json:"interestedOffersCount"`
	SavedOffersCount      int    `json:"savedOffersCount"`
	AnalysedOffersCount   int    `json:"analysedOffersCount"`
}

type CareerOverviewResponse struct {
	Success        bool                 `json:"success"`
	Step           string               `json:"step"`
	Analysis       *OverviewAnalysis    `json:"analysis"`
	TokenStats     *TokenStats          `json:"tokenStats"`
	UserProfile    CareerProfileSummary `json:"userProfile"`
	MarketInsights *MarketSnapshot      `json:"marketInsights"`
}

type CareerDetailedResponse struct {
	Success          bool          `json:"success"`
	Step             string        `json:"step"`
	SelectedPosition string        `json:"selectedPosition"`
	DetailedPlan     *DetailedPlan `json:"detailedPlan"`
	TokenStats       *TokenStats   `json:"tokenStats"`
}

type JobAnalyzeRequest struct {
	JobOfferID     string `json:"jobOfferId"`
	JobDescription string `json:"jobDescription"`
}

type JobAnalyzeResponse struct {
	Analysis    *JobAnalysisResult `json:"analysis"`
	RawAnalysis string             `json:"rawAnalysis,omitempty"`
	TokenStats  *TokenStats        `json:"tokenStats,omitempty"`
}

type PopularStatsRequest struct {
	AllSkillsList       []string `json:"allSkillsList"`
	AllTechnologiesList []string `json:"allTechnologiesList"`
	AllTitles           []string `json:"allTitles"`
}

type SkillItem struct {
	Name          string `json:"name"`
	Count         int    `json:"count"`
	Color         string `json:"color"`
	GradientColor string `json:"gradientColor"`
}

type JobPositionItem struct {
	Title string `json:"title"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

type PopularStatsResponse struct {
	Skills       []SkillItem       `json:"skills"`
	Technologies []SkillItem       `json:"technologies"`
	Positions    []JobPositionItem `json:"positions"`
}

type CreateOfferRequest struct {
	Title           string `json:"title"`
	Company         string `json:"company"`
	Status          string `json:"status"`
	FullDescription string `json:"full_description"`
}

type UpdateOfferStatusRequest struct {
	Status string `json:"status"`
}
