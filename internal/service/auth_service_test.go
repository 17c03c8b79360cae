package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz_app_backend/internal/config"
	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/repository"
	"quiz_app_backend/internal/util"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	tokens := NewTokenService(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	cfg := &config.Config{}
	cfg.JWT.Secret = "segredo-de-teste-com-32-caracteres!!"
	cfg.JWT.ExpireTime = time.Hour

	return NewAuthService(repository.NewUserRepository(db), tokens, cfg)
}

func createAdmin(t *testing.T, db *gorm.DB, email, password string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := &model.User{Name: "Admin", Email: email, Password: string(hashed), Role: model.RoleAdmin}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
	return admin
}

func TestAdminLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if _, err := svc.AdminLogin("ninguem@example.com", "qualquer"); !errors.Is(err, util.ErrNotAdmin) {
		t.Fatalf("err = %v, want ErrNotAdmin", err)
	}
}

func TestAdminLoginRejectsRegularUser(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	createUser(t, db, "Iris", "iris@example.com", model.RoleUser)

	// A recusa de papel vem antes da senha, com ou sem senha correta.
	if _, err := svc.AdminLogin("iris@example.com", "tanto-faz"); !errors.Is(err, util.ErrNotAdmin) {
		t.Fatalf("err = %v, want ErrNotAdmin", err)
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	createAdmin(t, db, "chefe@example.com", "senha-certa")

	if _, err := svc.AdminLogin("chefe@example.com", "senha-errada"); !errors.Is(err, util.ErrWrongPassword) {
		t.Fatalf("err = %v, want ErrWrongPassword", err)
	}
}

func TestAdminLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	admin := createAdmin(t, db, "chefe@example.com", "senha-certa")

	result, err := svc.AdminLogin("chefe@example.com", "senha-certa")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}
	if result.User.ID != admin.ID || result.User.Role != model.RoleAdmin {
		t.Fatalf("summary = %+v", result.User)
	}

	claims, err := util.ParseJWT(result.Token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != admin.ID || claims.ID == "" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestUserLoginChecks(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	createUser(t, db, "João", "joao@example.com", model.RoleUser)
	createAdmin(t, db, "chefe@example.com", "senha")

	if _, err := svc.UserLogin("João", "sumido@example.com"); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("unknown email err = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.UserLogin("Outro Nome", "joao@example.com"); !errors.Is(err, util.ErrNameMismatch) {
		t.Fatalf("name mismatch err = %v, want ErrNameMismatch", err)
	}
	if _, err := svc.UserLogin("Admin", "chefe@example.com"); !errors.Is(err, util.ErrNotRegularUser) {
		t.Fatalf("admin via user login err = %v, want ErrNotRegularUser", err)
	}

	result, err := svc.UserLogin("João", "joao@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}
}

func TestLogoutRevokesOnlyPresentedToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	createUser(t, db, "Lia", "lia@example.com", model.RoleUser)

	first, err := svc.UserLogin("Lia", "lia@example.com")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.UserLogin("Lia", "lia@example.com")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	firstClaims, err := util.ParseJWT(first.Token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse first token: %v", err)
	}
	secondClaims, err := util.ParseJWT(second.Token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse second token: %v", err)
	}

	ctx := context.Background()
	if err := svc.Logout(ctx, firstClaims); err != nil {
		t.Fatalf("logout: %v", err)
	}

	revoked, err := svc.Tokens.IsRevoked(ctx, firstClaims.ID)
	if err != nil || !revoked {
		t.Fatalf("first token revoked = %v, err = %v", revoked, err)
	}
	revoked, err = svc.Tokens.IsRevoked(ctx, secondClaims.ID)
	if err != nil || revoked {
		t.Fatalf("second token revoked = %v, err = %v", revoked, err)
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	if err := svc.Logout(context.Background(), nil); !errors.Is(err, util.ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}
