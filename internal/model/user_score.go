package model

// UserScore é o agregado denormalizado de Participation.Score, gravado na
// mesma transação da submissão.
//
// swagger:model UserScore
type UserScore struct {
	BaseModel
	UserID uint `gorm:"not null;index" json:"user_id"`
	QuizID uint `gorm:"not null;index" json:"quiz_id"`
	Score  int  `gorm:"not null;default:0" json:"score"`
}

func (UserScore) TableName() string {
	return "user_scores"
}
