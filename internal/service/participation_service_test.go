package service

import (
	"errors"
	"testing"

	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/repository"
	"quiz_app_backend/internal/util"

	"gorm.io/gorm"
)

func newParticipationService(db *gorm.DB) *ParticipationService {
	return NewParticipationService(
		repository.NewParticipationRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewQuizRepository(db),
		db,
	)
}

func TestSubmitScoresTenPointsPerCorrectAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := newParticipationService(db)

	user := createUser(t, db, "Ana", "ana@example.com", model.RoleUser)
	quiz := createQuiz(t, db, "Capitais")
	q1 := createQuestion(t, db, quiz.ID, "Brasília é a capital do Brasil?", true)
	q2 := createQuestion(t, db, quiz.ID, "Sydney é a capital da Austrália?", false)
	q3 := createQuestion(t, db, quiz.ID, "Lima é a capital do Peru?", true)

	answers := []AnswerInput{
		{QuestionID: q1.ID, Answer: boolPtr(true)},
		{QuestionID: q2.ID, Answer: boolPtr(false)},
		{QuestionID: q3.ID, Answer: boolPtr(false)},
	}

	participation, userScore, err := svc.Submit(user.ID, quiz.ID, answers)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if participation.Score != 20 {
		t.Fatalf("participation score = %d, want 20", participation.Score)
	}
	if userScore.Score != 20 {
		t.Fatalf("user score = %d, want 20", userScore.Score)
	}
	if participation.CompletedAt.IsZero() {
		t.Fatalf("expected completed_at to be set")
	}

	var stored []model.UserAnswer
	if err := db.Where("user_id = ?", user.ID).Order("question_id").Find(&stored).Error; err != nil {
		t.Fatalf("load answers: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("stored %d answers, want 3", len(stored))
	}
	wantCorrect := map[uint]bool{q1.ID: true, q2.ID: true, q3.ID: false}
	for _, a := range stored {
		if a.IsCorrect != wantCorrect[a.QuestionID] {
			t.Fatalf("question %d: is_correct = %v, want %v", a.QuestionID, a.IsCorrect, wantCorrect[a.QuestionID])
		}
	}
}

func TestSubmitRejectsSecondParticipation(t *testing.T) {
	db := newTestDB(t)
	svc := newParticipationService(db)

	user := createUser(t, db, "Bruno", "bruno@example.com", model.RoleUser)
	quiz := createQuiz(t, db, "História")
	q := createQuestion(t, db, quiz.ID, "A Segunda Guerra terminou em 1945?", true)

	answers := []AnswerInput{{QuestionID: q.ID, Answer: boolPtr(true)}}
	if _, _, err := svc.Submit(user.ID, quiz.ID, answers); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	if _, _, err := svc.Submit(user.ID, quiz.ID, answers); !errors.Is(err, util.ErrAlreadyParticipated) {
		t.Fatalf("second submit err = %v, want ErrAlreadyParticipated", err)
	}

	var answerCount, scoreCount, participationCount int64
	db.Model(&model.UserAnswer{}).Count(&answerCount)
	db.Model(&model.UserScore{}).Count(&scoreCount)
	db.Model(&model.Participation{}).Count(&participationCount)
	if answerCount != 1 || scoreCount != 1 || participationCount != 1 {
		t.Fatalf("counts after rejected submit = %d/%d/%d, want 1/1/1", answerCount, scoreCount, participationCount)
	}
}

func TestSubmitUnknownQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := newParticipationService(db)

	user := createUser(t, db, "Carla", "carla@example.com", model.RoleUser)

	_, _, err := svc.Submit(user.ID, 999, []AnswerInput{{QuestionID: 1, Answer: boolPtr(true)}})
	if !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestSubmitValidatesAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newParticipationService(db)

	user := createUser(t, db, "Davi", "davi@example.com", model.RoleUser)
	quiz := createQuiz(t, db, "Geografia")
	q := createQuestion(t, db, quiz.ID, "O Nilo fica na África?", true)

	_, _, err := svc.Submit(user.ID, quiz.ID, nil)
	ve, ok := util.AsValidationError(err)
	if !ok {
		t.Fatalf("empty answers err = %v, want validation error", err)
	}
	if _, found := ve.Fields["answers"]; !found {
		t.Fatalf("expected field answers, got %v", ve.Fields)
	}

	_, _, err = svc.Submit(user.ID, quiz.ID, []AnswerInput{{QuestionID: q.ID}})
	ve, ok = util.AsValidationError(err)
	if !ok {
		t.Fatalf("nil answer err = %v, want validation error", err)
	}
	if _, found := ve.Fields["answers.0.answer"]; !found {
		t.Fatalf("expected field answers.0.answer, got %v", ve.Fields)
	}

	_, _, err = svc.Submit(user.ID, quiz.ID, []AnswerInput{{QuestionID: 12345, Answer: boolPtr(true)}})
	ve, ok = util.AsValidationError(err)
	if !ok {
		t.Fatalf("unknown question err = %v, want validation error", err)
	}
	if got := ve.Fields["answers.0.question_id"]; got != "O question_id selecionado é inválido." {
		t.Fatalf("answers.0.question_id message = %q", got)
	}
}

func TestShowMissingParticipation(t *testing.T) {
	db := newTestDB(t)
	svc := newParticipationService(db)

	if _, err := svc.Show(42); !errors.Is(err, util.ErrParticipationMissing) {
		t.Fatalf("err = %v, want ErrParticipationMissing", err)
	}
}

func TestIndexPreloadsUserAndQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := newParticipationService(db)

	user := createUser(t, db, "Elisa", "elisa@example.com", model.RoleUser)
	quiz := createQuiz(t, db, "Artes")
	q := createQuestion(t, db, quiz.ID, "A Mona Lisa é de Da Vinci?", true)

	if _, _, err := svc.Submit(user.ID, quiz.ID, []AnswerInput{{QuestionID: q.ID, Answer: boolPtr(true)}}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	participations, err := svc.Index()
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if len(participations) != 1 {
		t.Fatalf("got %d participations, want 1", len(participations))
	}
	p := participations[0]
	if p.User == nil || p.User.Email != user.Email {
		t.Fatalf("expected joined user, got %+v", p.User)
	}
	if p.Quiz == nil || p.Quiz.Title != quiz.Title {
		t.Fatalf("expected joined quiz, got %+v", p.Quiz)
	}
}
