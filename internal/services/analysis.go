package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"careerpath/api/internal/models"
	"careerpath/api/internal/repositories"
)

const (
	analysisModelName = "gemini-2.0-flash-lite"

	// minDescriptionLength rejects descriptions too short to analyse.
	minDescriptionLength = 20
)

type JobAnalysisService interface {
	AnalyzeOffer(ctx context.Context, userID, offerID uuid.UUID, fallbackDescription string) (*models.JobAnalyzeResponse, error)
}

type jobAnalysisService struct {
	offerRepo    repositories.JobOfferRepository
	analysisRepo repositories.AnalysisRepository
	gemini       GeminiService
	prompts      *PromptBuilder
}

func NewJobAnalysisService(
	offerRepo repositories.JobOfferRepository,
	analysisRepo repositories.AnalysisRepository,
	gemini GeminiService,
) JobAnalysisService {
	return &jobAnalysisService{
		offerRepo:    offerRepo,
		analysisRepo: analysisRepo,
		gemini:       gemini,
		prompts:      NewPromptBuilder(),
	}
}

// AnalyzeOffer implements JobAnalysisService. The extraction runs once per
// offer: an existing analysis is returned as-is, a new one is generated,
// parsed into the six requirement categories and persisted.
func (s *jobAnalysisService) AnalyzeOffer(ctx context.Context, userID, offerID uuid.UUID, fallbackDescription string) (*models.JobAnalyzeResponse, error) {
	offer, err := s.offerRepo.FindByIDForUser(offerID, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.analysisRepo.FindByOfferID(offer.ID)
	if err == nil {
		log.Printf("✅ Reusing existing analysis for offer %s\n", offer.ID)
		return &models.JobAnalyzeResponse{Analysis: existing}, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	// Prefer the stored description over the request payload.
	description := offer.FullDescription
	if strings.TrimSpace(description) == "" {
		description = fallbackDescription
	}
	if len(strings.TrimSpace(description)) < minDescriptionLength {
		return nil, &ValidationError{Msg: "job description is too short or empty"}
	}

	log.Printf("🔄 Analysing offer %s (%d characters)\n", offer.ID, len(description))

	prompt := s.prompts.BuildRequirementAnalysisPrompt(description)
	raw, usage, err := s.gemini.GenerateContent(ctx, analysisModelName, AnalysisSystemInstruction, prompt)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	if strings.TrimSpace(raw) == "" {
		return nil, &ParsingError{Attempts: 1}
	}

	if !ContainsRequiredSections(raw) {
		log.Printf("❌ Analysis response missing required sections for offer %s\n", offer.ID)
		return nil, &ParsingError{Attempts: 1, RawExcerpt: excerpt(raw, excerptLimit)}
	}

	requirements := ParseRequirementAnalysis(raw)

	result := &models.JobAnalysisResult{
		ID:                uuid.New(),
		JobOfferID:        offer.ID,
		Skills:            requirements.Skills,
		Technologies:      requirements.Technologies,
		Experience:        requirements.Experience,
		Education:         requirements.Education,
		Languages:         requirements.Languages,
		OtherRequirements: requirements.OtherRequirements,
	}

	if err := s.analysisRepo.Create(result); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	log.Printf("✅ Analysis saved for offer %s\n", offer.ID)

	return &models.JobAnalyzeResponse{
		Analysis:    result,
		RawAnalysis: raw,
		TokenStats:  usage,
	}, nil
}
