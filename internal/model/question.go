package model

// swagger:model Question
type Question struct {
	BaseModel
	QuizID uint   `gorm:"not null;index" json:"quiz_id"`
	Text   string `gorm:"type:text;not null" json:"text"`
	// true para "Verdadeiro", false para "Falso".
	CorrectAnswer bool   `gorm:"not null" json:"correct_answer"`
	Image         string `gorm:"size:255" json:"image"`
}

func (Question) TableName() string {
	return "questions"
}
