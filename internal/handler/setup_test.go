package handler

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cyclelog/internal/db"
	"github.com/cyclelog/internal/service"
	"github.com/cyclelog/internal/store"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) (*API, func()) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	sqlStore := store.NewSQLStore(gdb)
	persister := service.NewPersister(nil, time.Second)
	cycles := service.NewCycleService(sqlStore, persister, nil)
	reviews := service.NewReviewService(sqlStore, cycles, persister, nil)
	notes := service.NewLoveNoteService(sqlStore, persister, nil)

	ctx := context.Background()
	cycles.Load(ctx)
	reviews.Load(ctx)
	notes.Load(ctx)

	api := NewAPI(cycles, reviews, notes, time.UTC).WithClock(func() time.Time {
		return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	})

	return api, func() {
		persister.Close()
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
