package service

import (
	"fmt"
	"strings"
	"testing"

	"quiz_app_backend/internal/model"
	"quiz_app_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB abre um banco em memória isolado por teste, com o mesmo esquema
// da subida normal.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email, Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createQuiz(t *testing.T, db *gorm.DB, title string) *model.Quiz {
	t.Helper()
	quiz := &model.Quiz{Title: title, Description: "descrição de " + title}
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("create quiz %s: %v", title, err)
	}
	return quiz
}

func createQuestion(t *testing.T, db *gorm.DB, quizID uint, text string, correct bool) *model.Question {
	t.Helper()
	question := &model.Question{QuizID: quizID, Text: text, CorrectAnswer: correct}
	if err := db.Create(question).Error; err != nil {
		t.Fatalf("create question %q: %v", text, err)
	}
	return question
}

func boolPtr(b bool) *bool { return &b }
