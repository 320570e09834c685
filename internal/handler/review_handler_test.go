package handler

import (
	"net/http"
	"testing"

	"github.com/cyclelog/internal/cycle"
)

func TestSaveCycleReviewUsesLatestLog(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	payload := map[string]any{"flow": "heavy", "pain_level": 2, "mood": "neutral"}

	w := performJSON(t, http.MethodPost, "/api/cycle/reviews", payload, api.SaveCycleReview)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 without logs, got %d", w.Code)
	}

	api.cycles.LogCycleStart(cycle.MustParseDate("2024-03-01"))

	w = performJSON(t, http.MethodPost, "/api/cycle/reviews", payload, api.SaveCycleReview)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Review struct {
			CycleStartDate string `json:"cycle_start_date"`
			AnalysisText   string `json:"analysis_text"`
		} `json:"review"`
	}
	decodeBody(t, w, &resp)
	if resp.Review.CycleStartDate != "2024-03-01" {
		t.Fatalf("unexpected review date: %s", resp.Review.CycleStartDate)
	}
	if resp.Review.AnalysisText != "Your body worked hard this cycle. 🌊" {
		t.Fatalf("unexpected analysis: %s", resp.Review.AnalysisText)
	}
}

func TestSaveCycleReviewRejectsInvalidAnswers(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	payload := map[string]any{"cycle_start_date": "2024-03-01", "flow": "heavy", "pain_level": 9, "mood": "neutral"}
	w := performJSON(t, http.MethodPost, "/api/cycle/reviews", payload, api.SaveCycleReview)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestListCycleReviews(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	api.cycles.LogCycleStart(cycle.MustParseDate("2024-03-01"))

	w := performJSON(t, http.MethodGet, "/api/cycle/reviews?today=2024-03-10", nil, api.ListCycleReviews)
	var before struct {
		Reviews   []cycle.Review `json:"reviews"`
		ReviewDue bool           `json:"review_due"`
	}
	decodeBody(t, w, &before)
	if len(before.Reviews) != 0 || !before.ReviewDue {
		t.Fatalf("expected review due with no reviews, got %+v", before)
	}

	if _, err := api.reviews.SaveCycleReview(cycle.MustParseDate("2024-03-01"), cycle.ReviewInput{Flow: cycle.FlowLight, PainLevel: 1, Mood: cycle.MoodHappy}); err != nil {
		t.Fatalf("SaveCycleReview returned error: %v", err)
	}

	w = performJSON(t, http.MethodGet, "/api/cycle/reviews?date=2024-03-01", nil, api.ListCycleReviews)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	w = performJSON(t, http.MethodGet, "/api/cycle/reviews?date=2024-02-01", nil, api.ListCycleReviews)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
