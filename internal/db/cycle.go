package db

import "time"

// CycleLog 记录一次经期开始日期
// StartDate 以 YYYY-MM-DD 文本存储，唯一索引保证同一天只记一次
// 不使用软删除，删除后同一天可以重新记录
type CycleLog struct {
	ID        uint   `gorm:"primaryKey"`
	StartDate string `gorm:"size:10;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 固定表名
func (CycleLog) TableName() string {
	return "cycle_logs"
}

// CycleReview 保存一次周期回顾，CycleStartDate 唯一，重复保存时整行覆盖
type CycleReview struct {
	ID             uint   `gorm:"primaryKey"`
	CycleStartDate string `gorm:"size:10;uniqueIndex;not null"`
	Flow           string `gorm:"size:16"`
	PainLevel      int
	HasClots       bool
	Mood           string `gorm:"size:16"`
	AnalysisText   string `gorm:"type:text"`
	AdviceText     string `gorm:"type:text"`
	RecordedAt     time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName 固定表名
func (CycleReview) TableName() string {
	return "cycle_reviews"
}

// LoveNote 是写给未来自己的短笺，ID 使用 uuid 字符串
type LoveNote struct {
	ID        string `gorm:"primaryKey;size:36"`
	Text      string `gorm:"type:text"`
	IsRead    bool   `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 固定表名
func (LoveNote) TableName() string {
	return "love_notes"
}
