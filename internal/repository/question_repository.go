package repository

import (
	"quiz_app_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	return &question, err
}

// FindByQuizAndID busca a pergunta dentro do escopo do quiz pai.
func (r *QuestionRepository) FindByQuizAndID(quizID, id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.Where("quiz_id = ?", quizID).First(&question, id).Error
	return &question, err
}

func (r *QuestionRepository) FindByQuizID(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("quiz_id = ?", quizID).Order("id").Find(&questions).Error
	return questions, err
}

// ExistingIDs devolve quais dos IDs informados existem na tabela.
func (r *QuestionRepository) ExistingIDs(ids []uint) (map[uint]bool, error) {
	var found []uint
	if err := r.DB.Model(&model.Question{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	existing := make(map[uint]bool, len(found))
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

// Delete remove a pergunta e as respostas já registradas para ela.
func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.UserAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}
