package model

const (
	FeedbackSyntaxError = "syntaxError"
	FeedbackHint        = "hint"
	FeedbackSuggestion  = "suggestion"
)

// FeedbackTemplate 本地规则反馈模板，按 (语言, 难度, 类别) 检索，随机取一条
// swagger:model FeedbackTemplate
type FeedbackTemplate struct {
	BaseModel
	Language string `gorm:"index:idx_feedback_group;size:50;not null" json:"language"`
	Level    string `gorm:"index:idx_feedback_group;size:50;not null" json:"level"`
	Category string `gorm:"index:idx_feedback_group;size:50;not null" json:"category"` // syntaxError/hint/suggestion
	Message  string `gorm:"type:text;not null" json:"message"`
	Enabled  bool   `gorm:"default:true" json:"enabled"`
}

func (FeedbackTemplate) TableName() string {
	return "feedback_templates"
}
