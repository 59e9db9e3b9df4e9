package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"careerpath/api/internal/models"
	"careerpath/api/internal/repositories"
)

type fakeCVRepo struct {
	cv  *models.UserCV
	err error
}

func (f *fakeCVRepo) FindLatestByUser(userID uuid.UUID) (*models.UserCV, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cv, nil
}

type fakeOfferRepo struct {
	offers []models.JobOffer
}

func (f *fakeOfferRepo) Create(offer *models.JobOffer) error { return nil }

func (f *fakeOfferRepo) FindByIDForUser(id, userID uuid.UUID) (*models.JobOffer, error) {
	for i := range f.offers {
		if f.offers[i].ID == id && f.offers[i].UserID == userID {
			return &f.offers[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeOfferRepo) FindRecentByUser(userID uuid.UUID, limit int) ([]models.JobOffer, error) {
	if len(f.offers) > limit {
		return f.offers[:limit], nil
	}
	return f.offers, nil
}

func (f *fakeOfferRepo) CountByUser(userID uuid.UUID) (int64, error) {
	return int64(len(f.offers)), nil
}

func (f *fakeOfferRepo) UpdateStatus(id, userID uuid.UUID, status models.OfferStatus) error {
	return nil
}

func (f *fakeOfferRepo) UpdateDescription(id, userID uuid.UUID, description string) error {
	return nil
}

type fakeAnalysisRepo struct {
	analyses []models.JobAnalysisResult
	created  []*models.JobAnalysisResult
}

func (f *fakeAnalysisRepo) Create(result *models.JobAnalysisResult) error {
	f.created = append(f.created, result)
	return nil
}

func (f *fakeAnalysisRepo) FindByOfferID(offerID uuid.UUID) (*models.JobAnalysisResult, error) {
	for i := range f.analyses {
		if f.analyses[i].JobOfferID == offerID {
			return &f.analyses[i], nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAnalysisRepo) FindByOfferIDs(offerIDs []uuid.UUID) ([]models.JobAnalysisResult, error) {
	var out []models.JobAnalysisResult
	for _, id := range offerIDs {
		for i := range f.analyses {
			if f.analyses[i].JobOfferID == id {
				out = append(out, f.analyses[i])
			}
		}
	}
	return out, nil
}

// fakeGenerator records each invocation and returns a canned payload.
type fakeGenerator struct {
	payload json.RawMessage
	err     error
	calls   int
	stages  []Stage
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, stage Stage, prompt string) (json.RawMessage, *models.TokenStats, error) {
	f.calls++
	f.stages = append(f.stages, stage)
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.payload, &models.TokenStats{PromptTokens: 100, OutputTokens: 200, TotalTokens: 300}, nil
}

func testCV(userID uuid.UUID) *models.UserCV {
	return &models.UserCV{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "CV 2026",
		CVData: map[string]any{
			"personalInfo": map[string]any{"firstName": "Jan"},
			"skills":       []any{"Go", "SQL"},
		},
	}
}

func testOffers(userID uuid.UUID, n int) []models.JobOffer {
	offers := make([]models.JobOffer, 0, n)
	for i := 0; i < n; i++ {
		status := models.StatusSaved
		switch i % 3 {
		case 0:
			status = models.StatusSend
		case 1:
			status = models.StatusInterested
		}
		offers = append(offers, models.JobOffer{
			ID:     uuid.New(),
			UserID: userID,
			Title:  fmt.Sprintf("Backend Developer %d", i),
			Status: status,
		})
	}
	return offers
}

func TestCareerOverview_TooFewOffers(t *testing.T) {
	userID := uuid.New()
	gen := &fakeGenerator{}
	svc := NewCareerService(
		&fakeCVRepo{cv: testCV(userID)},
		&fakeOfferRepo{offers: testOffers(userID, 19)},
		&fakeAnalysisRepo{},
		gen,
	)

	_, err := svc.Overview(context.Background(), userID)

	var precondition *PreconditionError
	if !errors.As(err, &precondition) {
		t.Fatalf("Overview() error = %v, want PreconditionError", err)
	}
	if precondition.OffersCount != 19 || precondition.Required != MinOffersForOverview {
		t.Errorf("PreconditionError = %+v", precondition)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times before precondition check", gen.calls)
	}
}

func TestCareerOverview_HappyPath(t *testing.T) {
	userID := uuid.New()
	offers := testOffers(userID, 20)

	analysisRepo := &fakeAnalysisRepo{}
	for i := 0; i < 5; i++ {
		analysisRepo.analyses = append(analysisRepo.analyses, models.JobAnalysisResult{
			ID:         uuid.New(),
			JobOfferID: offers[i].ID,
			Skills:     []string{"Go", "Docker"},
		})
	}

	gen := &fakeGenerator{payload: json.RawMessage(validOverviewJSON)}
	svc := NewCareerService(
		&fakeCVRepo{cv: testCV(userID)},
		&fakeOfferRepo{offers: offers},
		analysisRepo,
		gen,
	)

	resp, err := svc.Overview(context.Background(), userID)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if !resp.Success || resp.Step != "overview" {
		t.Errorf("response envelope = success:%v step:%q", resp.Success, resp.Step)
	}
	if resp.Analysis == nil || resp.Analysis.CurrentPosition.Title != "Junior Developer" {
		t.Errorf("Analysis = %+v", resp.Analysis)
	}
	if resp.UserProfile.CVName != "CV 2026" {
		t.Errorf("CVName = %q", resp.UserProfile.CVName)
	}
	if resp.UserProfile.TotalOffersCount != 20 {
		t.Errorf("TotalOffersCount = %d, want 20", resp.UserProfile.TotalOffersCount)
	}
	if resp.UserProfile.AnalysedOffersCount != 5 {
		t.Errorf("AnalysedOffersCount = %d, want 5", resp.UserProfile.AnalysedOffersCount)
	}
	if resp.MarketInsights == nil || len(resp.MarketInsights.TargetPositions) == 0 {
		t.Error("MarketInsights is empty")
	}
	if resp.TokenStats == nil || resp.TokenStats.TotalTokens != 300 {
		t.Errorf("TokenStats = %+v", resp.TokenStats)
	}

	if gen.calls != 1 || gen.stages[0] != StageOverview {
		t.Errorf("generator calls = %d stages = %v", gen.calls, gen.stages)
	}
	// The prompt embeds the serialized profile and market data.
	if !strings.Contains(gen.prompts[0], "Jan") {
		t.Error("prompt does not embed the user profile")
	}
}

func TestCareerDetailedPlan_RequiresSelection(t *testing.T) {
	userID := uuid.New()
	gen := &fakeGenerator{}
	svc := NewCareerService(
		&fakeCVRepo{cv: testCV(userID)},
		&fakeOfferRepo{offers: testOffers(userID, 20)},
		&fakeAnalysisRepo{},
		gen,
	)

	_, err := svc.DetailedPlan(context.Background(), userID, "")

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("DetailedPlan() error = %v, want ValidationError", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for an invalid request", gen.calls)
	}
}

func TestCareerDetailedPlan_HappyPath(t *testing.T) {
	userID := uuid.New()
	payload := json.RawMessage(`{
		"selected_position": "Mid Developer",
		"detailed_plan": {
			"target_position": "Mid Developer",
			"estimated_timeline": "12 miesięcy",
			"success_probability": 0.7
		}
	}`)

	gen := &fakeGenerator{payload: payload}
	svc := NewCareerService(
		&fakeCVRepo{cv: testCV(userID)},
		&fakeOfferRepo{offers: testOffers(userID, 3)},
		&fakeAnalysisRepo{},
		gen,
	)

	// No offer-count precondition on the detailed stage.
	resp, err := svc.DetailedPlan(context.Background(), userID, "Mid Developer")
	if err != nil {
		t.Fatalf("DetailedPlan() error = %v", err)
	}

	if resp.Step != "detailed" || resp.SelectedPosition != "Mid Developer" {
		t.Errorf("response envelope = step:%q selectedPosition:%q", resp.Step, resp.SelectedPosition)
	}
	if resp.DetailedPlan == nil || resp.DetailedPlan.TargetPosition != "Mid Developer" {
		t.Errorf("DetailedPlan = %+v", resp.DetailedPlan)
	}
	if gen.stages[0] != StageDetailed {
		t.Errorf("stage = %v, want detailed", gen.stages[0])
	}
	if !strings.Contains(gen.prompts[0], "Mid Developer") {
		t.Error("prompt does not embed the selected position")
	}
}

func TestCareerOverview_MissingCV(t *testing.T) {
	userID := uuid.New()
	svc := NewCareerService(
		&fakeCVRepo{err: repositories.ErrNotFound},
		&fakeOfferRepo{offers: testOffers(userID, 20)},
		&fakeAnalysisRepo{},
		&fakeGenerator{},
	)

	_, err := svc.Overview(context.Background(), userID)
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("Overview() error = %v, want wrapped ErrNotFound", err)
	}
}
