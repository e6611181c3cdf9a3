package model

import "time"

// ExerciseProgress 每个 (用户, 语言, levelKey) 一条的练习进度记录。
// levelKey 形如 "beginner-2"，定位某难度下的第几题。
// 不变式：SubmittedAt 非空 当且仅当 IsCompleted 为 true。
// swagger:model ExerciseProgress
type ExerciseProgress struct {
	BaseModel
	UserID      uint       `gorm:"index:idx_progress_key,unique;type:bigint unsigned" json:"userId"`
	Language    string     `gorm:"index:idx_progress_key,unique;size:50;not null" json:"language"`
	LevelKey    string     `gorm:"index:idx_progress_key,unique;size:50;not null" json:"levelKey"`
	Code        string     `gorm:"type:text" json:"code"` // 最近一次提交/暂存的代码
	IsCompleted bool       `gorm:"default:false" json:"isCompleted"`
	Points      int        `gorm:"default:0" json:"points"` // 首次完成时一次性发放
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

func (ExerciseProgress) TableName() string {
	return "exercise_progresses"
}

// ExerciseState 每个 (用户, 语言, 难度) 的续学游标：下次进入应展示的题目下标。
// swagger:model ExerciseState
type ExerciseState struct {
	BaseModel
	UserID       uint   `gorm:"index:idx_state_key,unique;type:bigint unsigned" json:"userId"`
	Language     string `gorm:"index:idx_state_key,unique;size:50;not null" json:"language"`
	Level        string `gorm:"index:idx_state_key,unique;size:50;not null" json:"level"`
	CurrentIndex int    `gorm:"default:0" json:"currentIndex"`
}

func (ExerciseState) TableName() string {
	return "exercise_states"
}
