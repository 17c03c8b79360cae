package service

import (
	"errors"
	"testing"

	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/repository"
	"quiz_app_backend/internal/util"
)

func TestQuizGetUnknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(repository.NewQuizRepository(db))

	if _, err := svc.Get(7); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestQuizUpdateAppliesOnlyGivenFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(repository.NewQuizRepository(db))

	quiz, err := svc.Create("Literatura", "Clássicos brasileiros", "images/capa.png")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Literatura Brasileira"
	updated, err := svc.Update(quiz.ID, UpdateQuizInput{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("title = %q, want %q", updated.Title, title)
	}
	if updated.Description != "Clássicos brasileiros" || updated.Image != "images/capa.png" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestQuizDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuizService(repository.NewQuizRepository(db))

	user := createUser(t, db, "Tânia", "tania@example.com", model.RoleUser)

	quiz := createQuiz(t, db, "Biologia")
	q := createQuestion(t, db, quiz.ID, "O coração humano tem quatro câmaras?", true)

	keep := createQuiz(t, db, "Química")
	keepQ := createQuestion(t, db, keep.ID, "H2O é água?", true)

	submitFor(t, db, user, quiz, []AnswerInput{{QuestionID: q.ID, Answer: boolPtr(true)}})
	submitFor(t, db, user, keep, []AnswerInput{{QuestionID: keepQ.ID, Answer: boolPtr(true)}})

	if err := svc.Delete(quiz.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var quizzes, questions, answers, scores, participations int64
	db.Model(&model.Quiz{}).Count(&quizzes)
	db.Model(&model.Question{}).Count(&questions)
	db.Model(&model.UserAnswer{}).Count(&answers)
	db.Model(&model.UserScore{}).Count(&scores)
	db.Model(&model.Participation{}).Count(&participations)
	if quizzes != 1 || questions != 1 || answers != 1 || scores != 1 || participations != 1 {
		t.Fatalf("counts = %d/%d/%d/%d/%d, want 1/1/1/1/1", quizzes, questions, answers, scores, participations)
	}

	// O quiz remanescente continua íntegro.
	var left model.Question
	if err := db.First(&left, keepQ.ID).Error; err != nil {
		t.Fatalf("surviving question: %v", err)
	}
}

func TestQuestionScopedLookup(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(repository.NewQuestionRepository(db), repository.NewQuizRepository(db))

	quiz := createQuiz(t, db, "Física")
	otherQuiz := createQuiz(t, db, "Astronomia")
	q := createQuestion(t, db, quiz.ID, "A luz tem velocidade finita?", true)

	if _, err := svc.GetScoped(quiz.ID, q.ID); err != nil {
		t.Fatalf("scoped get: %v", err)
	}
	if _, err := svc.GetScoped(otherQuiz.ID, q.ID); !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("cross-quiz get err = %v, want ErrQuestionNotFound", err)
	}
}

func TestQuestionCreateRequiresQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(repository.NewQuestionRepository(db), repository.NewQuizRepository(db))

	if _, err := svc.Create(99, "Sem quiz?", true, ""); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestQuestionDeleteRemovesAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(repository.NewQuestionRepository(db), repository.NewQuizRepository(db))

	user := createUser(t, db, "Vera", "vera@example.com", model.RoleUser)
	quiz := createQuiz(t, db, "Programação")
	q1 := createQuestion(t, db, quiz.ID, "Go é compilado?", true)
	q2 := createQuestion(t, db, quiz.ID, "HTML é linguagem de programação?", false)

	submitFor(t, db, user, quiz, []AnswerInput{
		{QuestionID: q1.ID, Answer: boolPtr(true)},
		{QuestionID: q2.ID, Answer: boolPtr(false)},
	})

	if err := svc.Delete(q1.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var answers int64
	db.Model(&model.UserAnswer{}).Count(&answers)
	if answers != 1 {
		t.Fatalf("answers = %d, want 1", answers)
	}
	if _, err := svc.Get(q1.ID); !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("get deleted err = %v, want ErrQuestionNotFound", err)
	}
}
