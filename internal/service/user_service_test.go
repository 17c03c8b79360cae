package service

import (
	"errors"
	"testing"

	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/repository"
	"quiz_app_backend/internal/util"
)

func TestRegisterDefaultsToRegularUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user, err := svc.Register(RegisterInput{Name: "Mário", Email: "mario@example.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != model.RoleUser {
		t.Fatalf("role = %q, want %q", user.Role, model.RoleUser)
	}
	if user.Password != "" {
		t.Fatalf("expected empty password hash for passwordless register")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	if _, err := svc.Register(RegisterInput{Name: "Nina", Email: "nina@example.com"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(RegisterInput{Name: "Outra Nina", Email: "nina@example.com"}); !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("err = %v, want ErrEmailRegistered", err)
	}
}

func TestUpdateUserEmailConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	createUser(t, db, "Olga", "olga@example.com", model.RoleUser)
	pablo := createUser(t, db, "Pablo", "pablo@example.com", model.RoleUser)

	taken := "olga@example.com"
	if _, err := svc.UpdateUser(pablo.ID, UpdateUserInput{Email: &taken}); !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("err = %v, want ErrEmailRegistered", err)
	}

	newName := "Pablo Silva"
	updated, err := svc.UpdateUser(pablo.ID, UpdateUserInput{Name: &newName})
	if err != nil {
		t.Fatalf("update name: %v", err)
	}
	if updated.Name != newName || updated.Email != "pablo@example.com" {
		t.Fatalf("updated = %+v", updated)
	}
}

func TestDeleteUserRemovesDependents(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user := createUser(t, db, "Rita", "rita@example.com", model.RoleUser)
	other := createUser(t, db, "Saulo", "saulo@example.com", model.RoleUser)

	quiz := createQuiz(t, db, "Música")
	q := createQuestion(t, db, quiz.ID, "Beethoven era surdo?", true)

	submitFor(t, db, user, quiz, []AnswerInput{{QuestionID: q.ID, Answer: boolPtr(true)}})
	submitFor(t, db, other, quiz, []AnswerInput{{QuestionID: q.ID, Answer: boolPtr(false)}})

	if err := svc.DeleteUser(user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var users, answers, scores, participations int64
	db.Model(&model.User{}).Count(&users)
	db.Model(&model.UserAnswer{}).Count(&answers)
	db.Model(&model.UserScore{}).Count(&scores)
	db.Model(&model.Participation{}).Count(&participations)
	if users != 1 || answers != 1 || scores != 1 || participations != 1 {
		t.Fatalf("counts = %d/%d/%d/%d, want 1/1/1/1", users, answers, scores, participations)
	}

	if err := svc.DeleteUser(user.ID); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("second delete err = %v, want ErrUserNotFound", err)
	}
}
