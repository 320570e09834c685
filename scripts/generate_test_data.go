package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cyclelog/internal/config"
	"github.com/cyclelog/internal/cycle"
	"github.com/cyclelog/internal/db"
	"github.com/cyclelog/internal/store"
	"github.com/google/uuid"
)

// 样例周期长度，包含一次过短和一次过长的间隔，方便观察统计过滤
var sampleCycleLengths = []int{28, 27, 30, 29, 12, 28, 31, 26, 50, 28, 29, 27, 28}

// 测试数据生成器
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("配置加载失败:", err)
	}
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成测试数据...")

	ctx := context.Background()
	sqlStore := store.NewSQLStore(db.DB)
	today := cycle.DateOf(time.Now().In(cfg.Location()))

	logs, err := createTestCycleLogs(ctx, sqlStore, today)
	if err != nil {
		log.Fatal("生成经期记录失败:", err)
	}
	if err := createTestReviews(ctx, sqlStore, logs); err != nil {
		log.Fatal("生成周期回顾失败:", err)
	}
	if err := createTestLoveNotes(ctx, sqlStore); err != nil {
		log.Fatal("生成短笺失败:", err)
	}

	fmt.Println("测试数据生成完成！")
	fmt.Printf("经期记录: %d 条，平均周期 %d 天\n", logs.Len(), cycle.CalculateStatistics(logs).AverageLengthDays)
}

// 从 today 往前按样例长度倒推开始日期，最近一次开始于 10 天前
func buildTestCycleLogs(today cycle.Date) cycle.LogSet {
	current := today.AddDays(-10)
	dates := []cycle.Date{current}
	for _, length := range sampleCycleLengths {
		current = current.AddDays(-length)
		dates = append(dates, current)
	}
	return cycle.NewLogSet(dates...)
}

// 创建测试经期记录，已有数据时跳过
func createTestCycleLogs(ctx context.Context, sqlStore *store.SQLStore, today cycle.Date) (cycle.LogSet, error) {
	existing, err := sqlStore.LoadCycleLogs(ctx)
	if err != nil {
		return cycle.LogSet{}, err
	}
	if len(existing) > 0 {
		fmt.Println("经期记录已存在，跳过创建")
		dates := make([]cycle.Date, 0, len(existing))
		for _, value := range existing {
			if d, err := cycle.ParseDate(value); err == nil {
				dates = append(dates, d)
			}
		}
		return cycle.NewLogSet(dates...), nil
	}

	logs := buildTestCycleLogs(today)
	if err := sqlStore.ReplaceCycleLogs(ctx, logs.Strings()); err != nil {
		return cycle.LogSet{}, err
	}
	fmt.Println("✅ 测试经期记录创建完成")
	return logs, nil
}

// 为除最近一次之外的前三个周期生成回顾，最近一次留给回顾提醒
func createTestReviews(ctx context.Context, sqlStore *store.SQLStore, logs cycle.LogSet) error {
	inputs := []cycle.ReviewInput{
		{Flow: cycle.FlowHeavy, PainLevel: 4, HasClots: true, Mood: cycle.MoodSad},
		{Flow: cycle.FlowMedium, PainLevel: 2, Mood: cycle.MoodHappy},
		{Flow: cycle.FlowLight, PainLevel: 1, Mood: cycle.MoodNeutral},
	}

	dates := logs.Dates()
	var reviews []cycle.Review
	for i, input := range inputs {
		if i+1 >= len(dates) {
			break
		}
		start := dates[i+1]
		reviews = cycle.SaveReview(reviews, cycle.NewReview(start, input, start.AddDays(7).Time()))
	}

	rows := make([]db.CycleReview, 0, len(reviews))
	for _, review := range reviews {
		rows = append(rows, db.CycleReview{
			CycleStartDate: review.CycleStartDate.String(),
			Flow:           string(review.Flow),
			PainLevel:      review.PainLevel,
			HasClots:       review.HasClots,
			Mood:           string(review.Mood),
			AnalysisText:   review.AnalysisText,
			AdviceText:     review.AdviceText,
			RecordedAt:     review.RecordedAt,
		})
	}
	if err := sqlStore.ReplaceCycleReviews(ctx, rows); err != nil {
		return err
	}
	fmt.Printf("✅ 测试周期回顾创建完成 (%d 条)\n", len(rows))
	return nil
}

// 创建测试短笺，其中一条已读
func createTestLoveNotes(ctx context.Context, sqlStore *store.SQLStore) error {
	now := time.Now()
	notes := []db.LoveNote{
		{ID: uuid.NewString(), Text: "You are **stronger** than you think.", CreatedAt: now.Add(-72 * time.Hour), IsRead: true},
		{ID: uuid.NewString(), Text: "Warm tea, soft blanket, early night.", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: uuid.NewString(), Text: "- stretch\n- hydrate\n- be kind to yourself", CreatedAt: now},
	}
	if err := sqlStore.ReplaceLoveNotes(ctx, notes); err != nil {
		return err
	}
	fmt.Println("✅ 测试短笺创建完成")
	return nil
}
