package service

import (
	"errors"

	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/repository"
	"quiz_app_backend/internal/util"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo *repository.QuizRepository
}

func NewQuizService(quizRepo *repository.QuizRepository) *QuizService {
	return &QuizService{QuizRepo: quizRepo}
}

func (s *QuizService) List() ([]model.Quiz, error) {
	return s.QuizRepo.FindAll()
}

func (s *QuizService) Get(id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) Create(title, description, imagePath string) (*model.Quiz, error) {
	quiz := &model.Quiz{
		Title:       title,
		Description: description,
		Image:       imagePath,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// UpdateQuizInput aplica só os campos presentes; imagem é tratada pelo
// controller, que conhece o upload.
type UpdateQuizInput struct {
	Title       *string
	Description *string
	Image       *string
}

func (s *QuizService) Update(id uint, input UpdateQuizInput) (*model.Quiz, error) {
	quiz, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		quiz.Title = *input.Title
	}
	if input.Description != nil {
		quiz.Description = *input.Description
	}
	if input.Image != nil {
		quiz.Image = *input.Image
	}

	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.QuizRepo.Delete(id)
}
