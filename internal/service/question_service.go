package service

import (
	"errors"

	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/repository"
	"quiz_app_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	QuizRepo     *repository.QuizRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, quizRepo *repository.QuizRepository) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		QuizRepo:     quizRepo,
	}
}

// ListByQuiz devolve as perguntas do quiz; o quiz precisa existir.
func (s *QuestionService) ListByQuiz(quizID uint) ([]model.Question, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return s.QuestionRepo.FindByQuizID(quizID)
}

func (s *QuestionService) GetScoped(quizID, id uint) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByQuizAndID(quizID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Get(id uint) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Create(quizID uint, text string, correctAnswer bool, imagePath string) (*model.Question, error) {
	if _, err := s.QuizRepo.FindByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	question := &model.Question{
		QuizID:        quizID,
		Text:          text,
		CorrectAnswer: correctAnswer,
		Image:         imagePath,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

type UpdateQuestionInput struct {
	Text          *string
	CorrectAnswer *bool
	Image         *string
}

func (s *QuestionService) Update(id uint, input UpdateQuestionInput) (*model.Question, error) {
	question, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Text != nil {
		question.Text = *input.Text
	}
	if input.CorrectAnswer != nil {
		question.CorrectAnswer = *input.CorrectAnswer
	}
	if input.Image != nil {
		question.Image = *input.Image
	}

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.QuestionRepo.Delete(id)
}
