package main

import (
	"context"
	"testing"

	"github.com/cyclelog/internal/cycle"
	"github.com/cyclelog/internal/db"
	"github.com/cyclelog/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedTestDB(t *testing.T) (*store.SQLStore, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file:cycle-seed?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db.DB = gdb

	return store.NewSQLStore(gdb), func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestBuildTestCycleLogsProducesRealisticStatistics(t *testing.T) {
	today := cycle.MustParseDate("2024-06-15")
	logs := buildTestCycleLogs(today)

	if logs.Len() != len(sampleCycleLengths)+1 {
		t.Fatalf("expected %d logs, got %d", len(sampleCycleLengths)+1, logs.Len())
	}

	latest, _ := logs.Latest()
	if !latest.Equal(today.AddDays(-10)) {
		t.Fatalf("unexpected latest log: %s", latest)
	}

	stats := cycle.CalculateStatistics(logs)
	if stats.ValidIntervals != len(sampleCycleLengths)-2 {
		t.Fatalf("expected outliers to be filtered, got %d valid intervals", stats.ValidIntervals)
	}
	if stats.AverageLengthDays != 28 {
		t.Fatalf("expected average 28, got %d", stats.AverageLengthDays)
	}
}

func TestCreateTestDataSeedsEverything(t *testing.T) {
	sqlStore, cleanup := setupSeedTestDB(t)
	defer cleanup()

	ctx := context.Background()
	today := cycle.MustParseDate("2024-06-15")

	logs, err := createTestCycleLogs(ctx, sqlStore, today)
	if err != nil {
		t.Fatalf("createTestCycleLogs returned error: %v", err)
	}
	if err := createTestReviews(ctx, sqlStore, logs); err != nil {
		t.Fatalf("createTestReviews returned error: %v", err)
	}
	if err := createTestLoveNotes(ctx, sqlStore); err != nil {
		t.Fatalf("createTestLoveNotes returned error: %v", err)
	}

	again, err := createTestCycleLogs(ctx, sqlStore, today.AddDays(30))
	if err != nil {
		t.Fatalf("second createTestCycleLogs returned error: %v", err)
	}
	if again.Len() != logs.Len() {
		t.Fatalf("expected existing logs to be kept, got %d", again.Len())
	}

	reviews, err := sqlStore.LoadCycleReviews(ctx)
	if err != nil {
		t.Fatalf("LoadCycleReviews returned error: %v", err)
	}
	if len(reviews) != 3 {
		t.Fatalf("expected 3 reviews, got %d", len(reviews))
	}
	latest, _ := logs.Latest()
	for _, review := range reviews {
		if review.CycleStartDate == latest.String() {
			t.Fatal("expected latest cycle to be left without review")
		}
	}

	notes, err := sqlStore.LoadLoveNotes(ctx)
	if err != nil {
		t.Fatalf("LoadLoveNotes returned error: %v", err)
	}
	if len(notes) != 3 || !notes[0].IsRead {
		t.Fatalf("unexpected seeded notes: %+v", notes)
	}
}
