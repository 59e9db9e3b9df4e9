package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	"careerpath/api/internal/models"
	"careerpath/api/internal/repositories"
)

const longDescription = "Poszukujemy programisty Go z doświadczeniem w budowie usług REST i pracy z PostgreSQL."

func TestAnalyzeOffer_OwnershipEnforced(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	offer := models.JobOffer{ID: uuid.New(), UserID: ownerID, Title: "Go Developer", Status: models.StatusSaved}

	svc := NewJobAnalysisService(
		&fakeOfferRepo{offers: []models.JobOffer{offer}},
		&fakeAnalysisRepo{},
		&fakeGemini{},
	)

	_, err := svc.AnalyzeOffer(context.Background(), otherID, offer.ID, longDescription)
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("AnalyzeOffer() error = %v, want ErrNotFound for foreign offer", err)
	}
}

func TestAnalyzeOffer_ReusesExistingAnalysis(t *testing.T) {
	userID := uuid.New()
	offer := models.JobOffer{ID: uuid.New(), UserID: userID, Title: "Go Developer", Status: models.StatusSend}
	existing := models.JobAnalysisResult{
		ID:         uuid.New(),
		JobOfferID: offer.ID,
		Skills:     []string{"Go"},
	}

	gemini := &fakeGemini{}
	svc := NewJobAnalysisService(
		&fakeOfferRepo{offers: []models.JobOffer{offer}},
		&fakeAnalysisRepo{analyses: []models.JobAnalysisResult{existing}},
		gemini,
	)

	resp, err := svc.AnalyzeOffer(context.Background(), userID, offer.ID, longDescription)
	if err != nil {
		t.Fatalf("AnalyzeOffer() error = %v", err)
	}
	if resp.Analysis == nil || resp.Analysis.ID != existing.ID {
		t.Errorf("Analysis = %+v, want the stored one", resp.Analysis)
	}
	if gemini.calls != 0 {
		t.Errorf("model called %d times despite an existing analysis", gemini.calls)
	}
}

func TestAnalyzeOffer_ShortDescription(t *testing.T) {
	userID := uuid.New()
	offer := models.JobOffer{ID: uuid.New(), UserID: userID, Title: "Go Developer", Status: models.StatusSaved}

	gemini := &fakeGemini{}
	svc := NewJobAnalysisService(
		&fakeOfferRepo{offers: []models.JobOffer{offer}},
		&fakeAnalysisRepo{},
		gemini,
	)

	_, err := svc.AnalyzeOffer(context.Background(), userID, offer.ID, "za krótki")

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("AnalyzeOffer() error = %v, want ValidationError", err)
	}
	if gemini.calls != 0 {
		t.Errorf("model called %d times for an invalid description", gemini.calls)
	}
}

func TestAnalyzeOffer_PrefersStoredDescription(t *testing.T) {
	userID := uuid.New()
	offer := models.JobOffer{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           "Go Developer",
		Status:          models.StatusSaved,
		FullDescription: "Opis zapisany w bazie: wymagane minimum trzy lata pracy z Go.",
	}

	gemini := &fakeGemini{responses: []string{sampleAnalysis}}
	svc := NewJobAnalysisService(
		&fakeOfferRepo{offers: []models.JobOffer{offer}},
		&fakeAnalysisRepo{},
		gemini,
	)

	if _, err := svc.AnalyzeOffer(context.Background(), userID, offer.ID, longDescription); err != nil {
		t.Fatalf("AnalyzeOffer() error = %v", err)
	}
	if !strings.Contains(gemini.prompts[0], "Opis zapisany w bazie") {
		t.Error("prompt does not use the stored description")
	}
	if strings.Contains(gemini.prompts[0], longDescription) {
		t.Error("prompt used the fallback despite a stored description")
	}
}

func TestAnalyzeOffer_HappyPathPersists(t *testing.T) {
	userID := uuid.New()
	offer := models.JobOffer{ID: uuid.New(), UserID: userID, Title: "Go Developer", Status: models.StatusSaved}

	analysisRepo := &fakeAnalysisRepo{}
	svc := NewJobAnalysisService(
		&fakeOfferRepo{offers: []models.JobOffer{offer}},
		analysisRepo,
		&fakeGemini{responses: []string{sampleAnalysis}},
	)

	resp, err := svc.AnalyzeOffer(context.Background(), userID, offer.ID, longDescription)
	if err != nil {
		t.Fatalf("AnalyzeOffer() error = %v", err)
	}

	if len(analysisRepo.created) != 1 {
		t.Fatalf("persisted %d analyses, want 1", len(analysisRepo.created))
	}
	saved := analysisRepo.created[0]
	if saved.JobOfferID != offer.ID {
		t.Errorf("saved JobOfferID = %s, want %s", saved.JobOfferID, offer.ID)
	}
	if want := []string{"Go", "PostgreSQL", "Redis"}; !reflect.DeepEqual(saved.Technologies, want) {
		t.Errorf("saved Technologies = %v, want %v", saved.Technologies, want)
	}

	if resp.RawAnalysis != sampleAnalysis {
		t.Error("response does not carry the raw analysis text")
	}
	if resp.TokenStats == nil {
		t.Error("response has no token stats")
	}
}

func TestAnalyzeOffer_MissingSections(t *testing.T) {
	userID := uuid.New()
	offer := models.JobOffer{ID: uuid.New(), UserID: userID, Title: "Go Developer", Status: models.StatusSaved}

	analysisRepo := &fakeAnalysisRepo{}
	svc := NewJobAnalysisService(
		&fakeOfferRepo{offers: []models.JobOffer{offer}},
		analysisRepo,
		&fakeGemini{responses: []string{"Przepraszam, nie mogę przeanalizować tej oferty."}},
	)

	_, err := svc.AnalyzeOffer(context.Background(), userID, offer.ID, longDescription)

	var parsing *ParsingError
	if !errors.As(err, &parsing) {
		t.Fatalf("AnalyzeOffer() error = %v, want ParsingError", err)
	}
	if len(analysisRepo.created) != 0 {
		t.Error("degenerate analysis was persisted")
	}
}

func TestAnalyzeOffer_ProviderFailure(t *testing.T) {
	userID := uuid.New()
	offer := models.JobOffer{ID: uuid.New(), UserID: userID, Title: "Go Developer", Status: models.StatusSaved}

	svc := NewJobAnalysisService(
		&fakeOfferRepo{offers: []models.JobOffer{offer}},
		&fakeAnalysisRepo{},
		&fakeGemini{errs: []error{errors.New("deadline exceeded")}},
	)

	_, err := svc.AnalyzeOffer(context.Background(), userID, offer.ID, longDescription)

	var provider *ProviderError
	if !errors.As(err, &provider) {
		t.Fatalf("AnalyzeOffer() error = %v, want ProviderError", err)
	}
}
