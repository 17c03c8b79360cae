package repository

import (
	"quiz_app_backend/internal/model"

	"gorm.io/gorm"
)

type ParticipationRepository struct {
	DB *gorm.DB
}

func NewParticipationRepository(db *gorm.DB) *ParticipationRepository {
	return &ParticipationRepository{DB: db}
}

// FindAll devolve todas as participações com os resumos de usuário e quiz.
// O carregamento é explícito; nada de lazy-loading.
func (r *ParticipationRepository) FindAll() ([]model.Participation, error) {
	var participations []model.Participation
	err := r.DB.Preload("User").Preload("Quiz").Order("id").Find(&participations).Error
	return participations, err
}

func (r *ParticipationRepository) FindByID(id uint) (*model.Participation, error) {
	var participation model.Participation
	err := r.DB.Preload("User").Preload("Quiz").First(&participation, id).Error
	return &participation, err
}

func (r *ParticipationRepository) FindByQuizID(quizID uint) ([]model.Participation, error) {
	var participations []model.Participation
	err := r.DB.Preload("User").Preload("Quiz").
		Where("quiz_id = ?", quizID).Order("id").
		Find(&participations).Error
	return participations, err
}

func (r *ParticipationRepository) FindByUserAndQuiz(userID, quizID uint) (*model.Participation, error) {
	var participation model.Participation
	err := r.DB.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&participation).Error
	return &participation, err
}

// GeneralRanking soma as pontuações de participação por usuário, em ordem
// decrescente. Só entram usuários que participaram de algum quiz.
func (r *ParticipationRepository) GeneralRanking() ([]model.RankingEntry, error) {
	var entries []model.RankingEntry
	err := r.DB.Model(&model.Participation{}).
		Select("users.id AS id, users.name AS name, users.email AS email, SUM(participations.score) AS score").
		Joins("JOIN users ON users.id = participations.user_id").
		Group("users.id, users.name, users.email").
		Order("score DESC, users.id ASC").
		Scan(&entries).Error
	return entries, err
}

// QuizRanking lista todos os usuários com a pontuação no quiz informado,
// zero para quem não pontuou.
func (r *ParticipationRepository) QuizRanking(quizID uint) ([]model.RankingEntry, error) {
	var entries []model.RankingEntry
	err := r.DB.Model(&model.User{}).
		Select("users.id AS id, users.name AS name, users.email AS email, COALESCE(user_scores.score, 0) AS score").
		Joins("LEFT JOIN user_scores ON user_scores.user_id = users.id AND user_scores.quiz_id = ?", quizID).
		Order("score DESC, users.id ASC").
		Scan(&entries).Error
	return entries, err
}

func (r *ParticipationRepository) CountScoresByQuiz(quizID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserScore{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return count, err
}
