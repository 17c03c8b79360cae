package service

import (
	"errors"
	"fmt"
	"time"

	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/repository"
	"quiz_app_backend/internal/util"

	"gorm.io/gorm"
)

// PointsPerCorrectAnswer é o valor de cada resposta correta.
const PointsPerCorrectAnswer = 10

type ParticipationService struct {
	ParticipationRepo *repository.ParticipationRepository
	QuestionRepo      *repository.QuestionRepository
	QuizRepo          *repository.QuizRepository
	DB                *gorm.DB
}

func NewParticipationService(
	participationRepo *repository.ParticipationRepository,
	questionRepo *repository.QuestionRepository,
	quizRepo *repository.QuizRepository,
	db *gorm.DB,
) *ParticipationService {
	return &ParticipationService{
		ParticipationRepo: participationRepo,
		QuestionRepo:      questionRepo,
		QuizRepo:          quizRepo,
		DB:                db,
	}
}

// AnswerInput é uma resposta enviada na submissão. Answer é ponteiro para
// distinguir "false" de campo ausente na validação.
type AnswerInput struct {
	QuestionID uint
	Answer     *bool
}

// Submit registra a tentativa única do usuário no quiz: valida as respostas,
// grava cada UserAnswer com is_correct derivado na hora, acumula 10 pontos por
// acerto e persiste UserScore e Participation. As escritas acontecem em uma
// única transação.
func (s *ParticipationService) Submit(userID, quizID uint, answers []AnswerInput) (*model.Participation, *model.UserScore, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrQuizNotFound
		}
		return nil, nil, err
	}

	if _, err := s.ParticipationRepo.FindByUserAndQuiz(userID, quizID); err == nil {
		return nil, nil, util.ErrAlreadyParticipated
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	if err := s.validateAnswers(answers); err != nil {
		return nil, nil, err
	}

	var participation *model.Participation
	var userScore *model.UserScore

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		questionIDs := make([]uint, 0, len(answers))
		for _, a := range answers {
			questionIDs = append(questionIDs, a.QuestionID)
		}

		var questions []model.Question
		if err := tx.Where("id IN ?", questionIDs).Find(&questions).Error; err != nil {
			return err
		}
		byID := make(map[uint]*model.Question, len(questions))
		for i := range questions {
			byID[questions[i].ID] = &questions[i]
		}

		score := 0
		for _, a := range answers {
			// Uma pergunta apagada entre a validação e este ponto ainda gera
			// registro, com is_correct false.
			question := byID[a.QuestionID]
			isCorrect := question != nil && *a.Answer == question.CorrectAnswer

			userAnswer := &model.UserAnswer{
				UserID:     userID,
				QuestionID: a.QuestionID,
				Answer:     *a.Answer,
				IsCorrect:  isCorrect,
			}
			if err := tx.Create(userAnswer).Error; err != nil {
				return err
			}

			if isCorrect {
				score += PointsPerCorrectAnswer
			}
		}

		userScore = &model.UserScore{
			UserID: userID,
			QuizID: quizID,
			Score:  score,
		}
		if err := tx.Create(userScore).Error; err != nil {
			return err
		}

		participation = &model.Participation{
			UserID:      userID,
			QuizID:      quizID,
			Score:       score,
			CompletedAt: time.Now(),
		}
		return tx.Create(participation).Error
	})

	if err != nil {
		// Duas submissões simultâneas passam pela checagem prévia; o índice
		// único decide, e a perdedora vira o mesmo conflito.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, util.ErrAlreadyParticipated
		}
		return nil, nil, err
	}

	return participation, userScore, nil
}

func (s *ParticipationService) validateAnswers(answers []AnswerInput) error {
	fields := make(map[string]string)

	if len(answers) == 0 {
		return util.NewValidationError(map[string]string{"answers": "O campo answers é obrigatório."})
	}

	ids := make([]uint, 0, len(answers))
	for i, a := range answers {
		if a.Answer == nil {
			fields[fmt.Sprintf("answers.%d.answer", i)] = "O campo answer é obrigatório e deve ser booleano."
		}
		if a.QuestionID == 0 {
			fields[fmt.Sprintf("answers.%d.question_id", i)] = "O campo question_id é obrigatório."
			continue
		}
		ids = append(ids, a.QuestionID)
	}

	if len(ids) > 0 {
		existing, err := s.QuestionRepo.ExistingIDs(ids)
		if err != nil {
			return err
		}
		for i, a := range answers {
			if a.QuestionID != 0 && !existing[a.QuestionID] {
				fields[fmt.Sprintf("answers.%d.question_id", i)] = "O question_id selecionado é inválido."
			}
		}
	}

	if len(fields) > 0 {
		return util.NewValidationError(fields)
	}
	return nil
}

func (s *ParticipationService) Index() ([]model.Participation, error) {
	return s.ParticipationRepo.FindAll()
}

func (s *ParticipationService) ListByQuiz(quizID uint) ([]model.Participation, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return s.ParticipationRepo.FindByQuizID(quizID)
}

func (s *ParticipationService) Show(id uint) (*model.Participation, error) {
	participation, err := s.ParticipationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrParticipationMissing
		}
		return nil, err
	}
	return participation, nil
}
