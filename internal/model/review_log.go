package model

// ReviewRequestLog AI 代码点评调用记录，用于用量统计与排查
type ReviewRequestLog struct {
	UUIDBase
	UserID      uint   `gorm:"index" json:"userId"`
	Language    string `gorm:"size:50" json:"language"`
	Model       string `gorm:"size:100" json:"model"`
	DurationMs  int64  `json:"durationMs"`
	OK          bool   `gorm:"default:false" json:"ok"`
	Suggestions int    `gorm:"default:0" json:"suggestions"`
}

func (ReviewRequestLog) TableName() string {
	return "review_request_logs"
}
