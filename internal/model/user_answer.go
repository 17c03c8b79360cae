package model

// UserAnswer guarda cada resposta enviada. is_correct é derivado no momento da
// gravação e a linha nunca é atualizada depois.
//
// swagger:model UserAnswer
type UserAnswer struct {
	BaseModel
	UserID     uint `gorm:"not null;index" json:"user_id"`
	QuestionID uint `gorm:"not null;index" json:"question_id"`
	Answer     bool `gorm:"not null" json:"answer"`
	IsCorrect  bool `gorm:"not null" json:"is_correct"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
