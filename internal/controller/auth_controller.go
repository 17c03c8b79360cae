package controller

import (
	"errors"
	"net/http"

	"quiz_app_backend/internal/service"
	"quiz_app_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin godoc
// @Summary Login de administrador
// @Description Autentica um administrador por email e senha e emite um token bearer
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param body body AdminLoginRequest true "Credenciais do administrador"
// @Success 200 {object} map[string]interface{} "message, token e user"
// @Failure 401 {object} map[string]string "Senha incorreta"
// @Failure 403 {object} map[string]string "Email não pertence a um administrador"
// @Router /login/admin [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, util.BindingMessages(err))
		return
	}

	result, err := c.AuthService.AdminLogin(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNotAdmin):
			util.Error(ctx, http.StatusForbidden, "Acesso negado. Este email não pertence a um administrador.")
		case errors.Is(err, util.ErrWrongPassword):
			util.Unauthorized(ctx, "Senha incorreta. Verifique e tente novamente.")
		default:
			util.LogInternalError(ctx, "Erro ao realizar o login.", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Bem-vindo, administrador!",
		"token":   result.Token,
		"user":    result.User,
	})
}

// swagger:model UserLoginRequest
type UserLoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UserLogin godoc
// @Summary Login de usuário regular
// @Description Autentica um usuário por nome e email e emite um token bearer
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param body body UserLoginRequest true "Nome e email do usuário"
// @Success 200 {object} map[string]interface{} "message, token e user"
// @Failure 401 {object} map[string]string "Nome não confere"
// @Failure 403 {object} map[string]string "Email não pertence a um usuário regular"
// @Failure 404 {object} map[string]string "Usuário não encontrado"
// @Router /login/user [post]
func (c *AuthController) UserLogin(ctx *gin.Context) {
	var req UserLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, util.BindingMessages(err))
		return
	}

	result, err := c.AuthService.UserLogin(req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "Usuário não encontrado. Verifique o email informado.")
		case errors.Is(err, util.ErrNameMismatch):
			util.Unauthorized(ctx, "Nome de usuário incorreto. Verifique os dados e tente novamente.")
		case errors.Is(err, util.ErrNotRegularUser):
			util.Error(ctx, http.StatusForbidden, "Acesso negado. Este email não pertence a um usuário regular.")
		default:
			util.LogInternalError(ctx, "Erro ao realizar o login.", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Bem-vindo, usuário!",
		"token":   result.Token,
		"user":    result.User,
	})
}

// Logout godoc
// @Summary Encerra a sessão atual
// @Description Revoga o token apresentado; outras sessões continuam válidas
// @Tags Autenticação
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Sem sessão ativa"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Usuário não autenticado. Não há sessão ativa.")
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), claims); err != nil {
		if errors.Is(err, util.ErrNoSession) {
			util.Unauthorized(ctx, "Usuário não autenticado. Não há sessão ativa.")
			return
		}
		util.LogInternalError(ctx, "Erro ao realizar o logout.", err)
		return
	}

	util.Message(ctx, http.StatusOK, "Logout realizado com sucesso.")
}
