package model

import "time"

// Participation registra a tentativa única de um usuário em um quiz.
// O índice composto garante no banco a unicidade (user_id, quiz_id) que a
// checagem prévia da aplicação não consegue garantir sob concorrência.
//
// swagger:model Participation
type Participation struct {
	BaseModel
	UserID      uint      `gorm:"not null;uniqueIndex:idx_participations_user_quiz" json:"user_id"`
	QuizID      uint      `gorm:"not null;uniqueIndex:idx_participations_user_quiz" json:"quiz_id"`
	Score       int       `gorm:"not null;default:0" json:"score"`
	CompletedAt time.Time `json:"completed_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Quiz *Quiz `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
}

func (Participation) TableName() string {
	return "participations"
}
