package database

import (
	"fmt"
	"log"

	"quiz_app_backend/internal/config"
	"quiz_app_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbc := &cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbc.User,
		dbc.Password,
		dbc.Host,
		dbc.Port,
		dbc.DBName,
		dbc.Charset,
		dbc.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Erros de chave duplicada viram gorm.ErrDuplicatedKey,
		// independente do dialeto.
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := SeedAdmin(db, &cfg.Admin); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.Participation{},
		&model.UserAnswer{},
		&model.UserScore{},
	)
}

// SeedAdmin garante um administrador na primeira subida. Sem admin não há como
// criar quizzes.
func SeedAdmin(db *gorm.DB, admin *config.AdminConfig) error {
	if admin.Email == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:     admin.Name,
		Email:    admin.Email,
		Password: string(hashed),
		Role:     model.RoleAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin user %s", admin.Email)
	return nil
}
