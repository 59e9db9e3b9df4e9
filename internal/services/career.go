package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"careerpath/api/internal/models"
	"careerpath/api/internal/repositories"
)

const (
	careerModelName = "gemini-2.5-flash"

	// MinOffersForOverview is the minimum number of tracked offers before
	// an overview analysis is meaningful.
	MinOffersForOverview = 20

	// recentOffersLimit caps how many of the newest offers feed a request.
	recentOffersLimit = 20
)

// NewCareerGenerator builds the structured generator used by both planning
// stages, bound to the career model and system instruction.
func NewCareerGenerator(gemini GeminiService, maxAttempts int) Generator {
	return NewGenerator(gemini, careerModelName, CareerSystemInstruction, maxAttempts)
}

type CareerService interface {
	Overview(ctx context.Context, userID uuid.UUID) (*models.CareerOverviewResponse, error)
	DetailedPlan(ctx context.Context, userID uuid.UUID, selectedPosition string) (*models.CareerDetailedResponse, error)
}

type careerService struct {
	cvRepo       repositories.UserCVRepository
	offerRepo    repositories.JobOfferRepository
	analysisRepo repositories.AnalysisRepository
	generator    Generator
	prompts      *PromptBuilder
}

func NewCareerService(
	cvRepo repositories.UserCVRepository,
	offerRepo repositories.JobOfferRepository,
	analysisRepo repositories.AnalysisRepository,
	generator Generator,
) CareerService {
	return &careerService{
		cvRepo:       cvRepo,
		offerRepo:    offerRepo,
		analysisRepo: analysisRepo,
		generator:    generator,
		prompts:      NewPromptBuilder(),
	}
}

// planningInput is everything a single planning request reads from the
// data store, assembled fresh per invocation.
type planningInput struct {
	cv       *models.UserCV
	offers   []models.JobOffer
	pairs    []OfferWithAnalysis
	analysed int
}

func (s *careerService) loadPlanningInput(userID uuid.UUID) (*planningInput, error) {
	cv, err := s.cvRepo.FindLatestByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user CV: %w", err)
	}

	offers, err := s.offerRepo.FindRecentByUser(userID, recentOffersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load job offers: %w", err)
	}

	offerIDs := make([]uuid.UUID, 0, len(offers))
	for _, offer := range offers {
		offerIDs = append(offerIDs, offer.ID)
	}

	analyses, err := s.analysisRepo.FindByOfferIDs(offerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load offer analyses: %w", err)
	}

	byOffer := make(map[uuid.UUID]*models.JobAnalysisResult, len(analyses))
	for i := range analyses {
		byOffer[analyses[i].JobOfferID] = &analyses[i]
	}

	pairs := make([]OfferWithAnalysis, 0, len(offers))
	for _, offer := range offers {
		pairs = append(pairs, OfferWithAnalysis{
			Offer:    offer,
			Analysis: byOffer[offer.ID],
		})
	}

	return &planningInput{
		cv:       cv,
		offers:   offers,
		pairs:    pairs,
		analysed: len(analyses),
	}, nil
}

func profileJSON(cv *models.UserCV) (string, error) {
	profile := models.BuildUserProfile(cv.CVData)
	b, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize user profile: %w", err)
	}
	return string(b), nil
}

func titlesByStatus(offers []models.JobOffer) OfferTitlesByStatus {
	var titles OfferTitlesByStatus
	for _, offer := range offers {
		switch offer.Status {
		case models.StatusSend:
			titles.Sent = append(titles.Sent, offer.Title)
		case models.StatusInterested:
			titles.Interested = append(titles.Interested, offer.Title)
		case models.StatusSaved:
			titles.Saved = append(titles.Saved, offer.Title)
		}
	}
	return titles
}

// Overview implements CareerService. It aggregates the user's tracked
// offers into a market snapshot and asks the model for the first-stage
// analysis with exactly two position options.
func (s *careerService) Overview(ctx context.Context, userID uuid.UUID) (*models.CareerOverviewResponse, error) {
	input, err := s.loadPlanningInput(userID)
	if err != nil {
		return nil, err
	}

	// Precondition check comes before any model call.
	if len(input.offers) < MinOffersForOverview {
		log.Printf("❌ Career overview rejected: %d/%d offers\n", len(input.offers), MinOffersForOverview)
		return nil, &PreconditionError{OffersCount: len(input.offers), Required: MinOffersForOverview}
	}

	market := AggregateMarketData(input.pairs)

	profile, err := profileJSON(input.cv)
	if err != nil {
		return nil, err
	}

	titles := titlesByStatus(input.offers)
	prompt := s.prompts.BuildOverviewPrompt(profile, titles, market)

	payload, usage, err := s.generator.Generate(ctx, StageOverview, prompt)
	if err != nil {
		return nil, err
	}

	var analysis models.OverviewAnalysis
	if err := json.Unmarshal(payload, &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode overview analysis: %w", err)
	}

	log.Printf("✅ Career overview generated for user %s\n", userID)

	return &models.CareerOverviewResponse{
		Success:    true,
		Step:       string(StageOverview),
		Analysis:   &analysis,
		TokenStats: usage,
		UserProfile: models.CareerProfileSummary{
			CVName:                input.cv.Name,
			TotalOffersCount:      len(input.offers),
			SentOffersCount:       len(titles.Sent),
			InterestedOffersCount: len(titles.Interested),
			SavedOffersCount:      len(titles.Saved),
			AnalysedOffersCount:   input.analysed,
		},
		MarketInsights: &market,
	}, nil
}

// DetailedPlan implements CareerService. The selected position is taken
// verbatim from the caller; the overview's options are not persisted, so
// there is nothing to cross-check it against.
func (s *careerService) DetailedPlan(ctx context.Context, userID uuid.UUID, selectedPosition string) (*models.CareerDetailedResponse, error) {
	if selectedPosition == "" {
		return nil, &ValidationError{Msg: "selectedPosition is required for the detailed step"}
	}

	input, err := s.loadPlanningInput(userID)
	if err != nil {
		return nil, err
	}

	market := AggregateMarketData(input.pairs)

	profile, err := profileJSON(input.cv)
	if err != nil {
		return nil, err
	}

	prompt := s.prompts.BuildDetailedPrompt(profile, selectedPosition, market)

	payload, usage, err := s.generator.Generate(ctx, StageDetailed, prompt)
	if err != nil {
		return nil, err
	}

	var result models.DetailedResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to decode detailed plan: %w", err)
	}

	log.Printf("✅ Detailed career plan generated for user %s (position: %s)\n", userID, selectedPosition)

	return &models.CareerDetailedResponse{
		Success:          true,
		Step:             string(StageDetailed),
		SelectedPosition: selectedPosition,
		DetailedPlan:     &result.DetailedPlan,
		TokenStats:       usage,
	}, nil
}
