package service

import (
	"errors"

	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/repository"
	"quiz_app_backend/internal/util"

	"gorm.io/gorm"
)

// ErrEmptyRanking sinaliza que não há dados para montar o ranking pedido.
var ErrEmptyRanking = errors.New("nenhum dado para o ranking")

type RankingService struct {
	ParticipationRepo *repository.ParticipationRepository
	QuizRepo          *repository.QuizRepository
}

func NewRankingService(participationRepo *repository.ParticipationRepository, quizRepo *repository.QuizRepository) *RankingService {
	return &RankingService{
		ParticipationRepo: participationRepo,
		QuizRepo:          quizRepo,
	}
}

// General soma as pontuações de todas as participações por usuário, em ordem
// decrescente.
func (s *RankingService) General() ([]model.RankingEntry, error) {
	entries, err := s.ParticipationRepo.GeneralRanking()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrEmptyRanking
	}
	return entries, nil
}

// ByQuiz devolve a pontuação de cada usuário no quiz, zero para quem não
// pontuou, em ordem decrescente.
func (s *RankingService) ByQuiz(quizID uint) ([]model.RankingEntry, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	count, err := s.ParticipationRepo.CountScoresByQuiz(quizID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrEmptyRanking
	}

	return s.ParticipationRepo.QuizRanking(quizID)
}
