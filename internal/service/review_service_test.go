package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cyclelog/internal/cycle"
	"github.com/cyclelog/internal/db"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
}

func TestReviewServiceSaveAndReload(t *testing.T) {
	sqlStore, cleanup := setupCycleTestDB(t)
	defer cleanup()

	persister := NewPersister(nil, 0)
	defer persister.Close()

	cycles := NewCycleService(sqlStore, persister, nil)
	cycles.Load(context.Background())
	cycles.LogCycleStart(cycle.MustParseDate("2024-03-01"))

	reviews := NewReviewService(sqlStore, cycles, persister, nil).WithClock(fixedClock)
	reviews.Load(context.Background())

	review, err := reviews.SaveCycleReview(cycle.MustParseDate("2024-03-01"), cycle.ReviewInput{
		Flow:      cycle.FlowHeavy,
		PainLevel: 4,
		Mood:      cycle.MoodSad,
	})
	if err != nil {
		t.Fatalf("SaveCycleReview returned error: %v", err)
	}

	if review.AnalysisText != "You showed incredible strength through the discomfort. ❤️" {
		t.Fatalf("unexpected analysis: %s", review.AnalysisText)
	}
	if !review.RecordedAt.Equal(fixedClock()) {
		t.Fatalf("unexpected recorded at: %v", review.RecordedAt)
	}

	persister.Flush()

	reloaded := NewReviewService(sqlStore, cycles, persister, nil)
	reloaded.Load(context.Background())

	got, err := reloaded.Get(cycle.MustParseDate("2024-03-01"))
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Flow != cycle.FlowHeavy || got.PainLevel != 4 || got.Mood != cycle.MoodSad {
		t.Fatalf("unexpected reloaded review: %+v", got)
	}
	if got.AdviceText != review.AdviceText {
		t.Fatalf("unexpected reloaded advice: %s", got.AdviceText)
	}
}

func TestReviewServiceReplacesSameDate(t *testing.T) {
	sqlStore, cleanup := setupCycleTestDB(t)
	defer cleanup()

	persister := NewPersister(nil, 0)
	defer persister.Close()

	cycles := NewCycleService(sqlStore, persister, nil)
	cycles.Load(context.Background())

	reviews := NewReviewService(sqlStore, cycles, persister, nil).WithClock(fixedClock)
	reviews.Load(context.Background())

	start := cycle.MustParseDate("2024-03-01")
	if _, err := reviews.SaveCycleReview(start, cycle.ReviewInput{Flow: cycle.FlowLight, PainLevel: 1, Mood: cycle.MoodHappy}); err != nil {
		t.Fatalf("first save returned error: %v", err)
	}
	if _, err := reviews.SaveCycleReview(cycle.MustParseDate("2024-02-01"), cycle.ReviewInput{Flow: cycle.FlowMedium, PainLevel: 2, Mood: cycle.MoodNeutral}); err != nil {
		t.Fatalf("second save returned error: %v", err)
	}
	if _, err := reviews.SaveCycleReview(start, cycle.ReviewInput{Flow: cycle.FlowMedium, PainLevel: 2, Mood: cycle.MoodNeutral}); err != nil {
		t.Fatalf("replace save returned error: %v", err)
	}

	list := reviews.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(list))
	}
	if !list[0].CycleStartDate.Equal(start) {
		t.Fatalf("expected newest review first, got %s", list[0].CycleStartDate)
	}
	if list[0].AnalysisText != "Your cycle was balanced and healthy. 🌸" {
		t.Fatalf("expected replaced review, got %s", list[0].AnalysisText)
	}

	persister.Flush()

	rows, err := sqlStore.LoadCycleReviews(context.Background())
	if err != nil {
		t.Fatalf("LoadCycleReviews returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 stored reviews, got %d", len(rows))
	}
}

func TestReviewServiceDefaultsToLatestLog(t *testing.T) {
	sqlStore, cleanup := setupCycleTestDB(t)
	defer cleanup()

	persister := NewPersister(nil, 0)
	defer persister.Close()

	cycles := NewCycleService(sqlStore, persister, nil)
	cycles.Load(context.Background())

	reviews := NewReviewService(sqlStore, cycles, persister, nil)
	reviews.Load(context.Background())

	input := cycle.ReviewInput{Flow: cycle.FlowMedium, PainLevel: 2, Mood: cycle.MoodNeutral}
	if _, err := reviews.SaveCycleReview(cycle.Date{}, input); !errors.Is(err, ErrNoCycleLogged) {
		t.Fatalf("expected ErrNoCycleLogged, got %v", err)
	}

	cycles.LogCycleStart(cycle.MustParseDate("2024-02-01"))
	cycles.LogCycleStart(cycle.MustParseDate("2024-03-01"))

	review, err := reviews.SaveCycleReview(cycle.Date{}, input)
	if err != nil {
		t.Fatalf("SaveCycleReview returned error: %v", err)
	}
	if review.CycleStartDate.String() != "2024-03-01" {
		t.Fatalf("expected latest log to be used, got %s", review.CycleStartDate)
	}
}

func TestReviewServiceRejectsInvalidInput(t *testing.T) {
	sqlStore, cleanup := setupCycleTestDB(t)
	defer cleanup()

	persister := NewPersister(nil, 0)
	defer persister.Close()

	cycles := NewCycleService(sqlStore, persister, nil)
	reviews := NewReviewService(sqlStore, cycles, persister, nil)
	start := cycle.MustParseDate("2024-03-01")

	cases := []cycle.ReviewInput{
		{Flow: "torrential", PainLevel: 2, Mood: cycle.MoodHappy},
		{Flow: cycle.FlowLight, PainLevel: 0, Mood: cycle.MoodHappy},
		{Flow: cycle.FlowLight, PainLevel: 6, Mood: cycle.MoodHappy},
		{Flow: cycle.FlowLight, PainLevel: 3, Mood: "bored"},
		{PainLevel: 3, Mood: cycle.MoodHappy},
	}

	for _, input := range cases {
		if _, err := reviews.SaveCycleReview(start, input); !errors.Is(err, ErrInvalidReview) {
			t.Fatalf("expected ErrInvalidReview for %+v, got %v", input, err)
		}
	}
	if len(reviews.List()) != 0 {
		t.Fatal("expected no review to be stored")
	}
}

func TestReviewServiceReviewDue(t *testing.T) {
	sqlStore, cleanup := setupCycleTestDB(t)
	defer cleanup()

	persister := NewPersister(nil, 0)
	defer persister.Close()

	cycles := NewCycleService(sqlStore, persister, nil)
	reviews := NewReviewService(sqlStore, cycles, persister, nil)

	today := cycle.MustParseDate("2024-03-10")
	if reviews.ReviewDue(today) {
		t.Fatal("expected no review due without logs")
	}

	cycles.LogCycleStart(cycle.MustParseDate("2024-03-01"))
	if !reviews.ReviewDue(today) {
		t.Fatal("expected review due on day 10")
	}
	if reviews.ReviewDue(cycle.MustParseDate("2024-03-05")) {
		t.Fatal("expected no review due on day 5")
	}

	if _, err := reviews.SaveCycleReview(cycle.Date{}, cycle.ReviewInput{Flow: cycle.FlowLight, PainLevel: 1, Mood: cycle.MoodHappy}); err != nil {
		t.Fatalf("SaveCycleReview returned error: %v", err)
	}
	if reviews.ReviewDue(today) {
		t.Fatal("expected no review due after saving one")
	}
}

func TestReviewServiceLoadMalformedRowsStartsEmpty(t *testing.T) {
	sqlStore, cleanup := setupCycleTestDB(t)
	defer cleanup()

	rows := []db.CycleReview{
		{CycleStartDate: "2024-03-01", Flow: "light", PainLevel: 1, Mood: "happy"},
		{CycleStartDate: "03/01/2024", Flow: "light", PainLevel: 1, Mood: "happy"},
	}
	if err := db.DB.Create(&rows).Error; err != nil {
		t.Fatalf("failed to seed reviews: %v", err)
	}

	persister := NewPersister(nil, 0)
	defer persister.Close()

	reviews := NewReviewService(sqlStore, NewCycleService(sqlStore, persister, nil), persister, nil)
	reviews.Load(context.Background())

	if len(reviews.List()) != 0 {
		t.Fatalf("expected empty reviews, got %d", len(reviews.List()))
	}
	if _, err := reviews.Get(cycle.MustParseDate("2024-03-01")); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
