package model

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	// Caminho da imagem no provedor de armazenamento, vazio quando não há imagem.
	Image string `gorm:"size:255" json:"image"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
