package service

import (
	"context"
	"errors"

	"quiz_app_backend/internal/config"
	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/repository"
	"quiz_app_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Tokens   *TokenService
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, tokens *TokenService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Tokens:   tokens,
		Cfg:      cfg,
	}
}

// LoginResult é o par credencial + resumo devolvido pelos dois logins.
type LoginResult struct {
	Token string
	User  model.UserSummary
}

// AdminLogin autentica por email+senha e exige papel admin. Email inexistente
// cai na mesma recusa de papel: a checagem de papel vem antes da senha.
func (s *AuthService) AdminLogin(email, password string) (*LoginResult, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotAdmin
		}
		return nil, err
	}

	if user.Role != model.RoleAdmin {
		return nil, util.ErrNotAdmin
	}

	if user.Password == "" {
		return nil, util.ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrWrongPassword
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user.Summary()}, nil
}

// UserLogin autentica usuários regulares por nome+email, sem senha.
func (s *AuthService) UserLogin(name, email string) (*LoginResult, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if user.Name != name {
		return nil, util.ErrNameMismatch
	}

	if user.Role != model.RoleUser {
		return nil, util.ErrNotRegularUser
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user.Summary()}, nil
}

// Logout revoga apenas o token apresentado; outras sessões da mesma
// identidade continuam válidas.
func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	if claims == nil || claims.ID == "" {
		return util.ErrNoSession
	}
	return s.Tokens.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}
