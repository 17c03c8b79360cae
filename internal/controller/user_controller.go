package controller

import (
	"errors"
	"net/http"

	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/service"
	"quiz_app_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// swagger:model RegisterUserRequest
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

// Register godoc
// @Summary Registra um novo usuário
// @Description Cria um usuário com papel "user" por padrão; a senha é opcional
// @Tags Usuários
// @Accept json
// @Produce json
// @Param body body RegisterUserRequest true "Dados do usuário"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]string "Email já cadastrado"
// @Failure 422 {object} map[string]interface{} "Erro de validação"
// @Router /register/user [post]
func (c *UserController) Register(ctx *gin.Context) {
	var req RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, util.BindingMessages(err))
		return
	}

	user, err := c.UserService.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.UserRole(req.Role),
	})
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, http.StatusConflict, "Este email já está cadastrado.")
			return
		}
		util.LogInternalError(ctx, "Erro ao criar o usuário.", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Usuário criado com sucesso!",
		"user":    user,
	})
}

// Index godoc
// @Summary Lista todos os usuários
// @Tags Usuários
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.User
// @Router /users [get]
func (c *UserController) Index(ctx *gin.Context) {
	users, err := c.UserService.GetUsers()
	if err != nil {
		util.LogInternalError(ctx, "Erro ao buscar os usuários.", err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// Show godoc
// @Summary Exibe um usuário
// @Tags Usuários
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do usuário"
// @Success 200 {object} model.User
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (c *UserController) Show(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	user, err := c.UserService.GetUser(id)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "Usuário não encontrado")
			return
		}
		util.LogInternalError(ctx, "Erro ao buscar o usuário.", err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
}

// Update godoc
// @Summary Atualiza nome e email de um usuário
// @Tags Usuários
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do usuário"
// @Param body body UpdateUserRequest true "Campos a atualizar"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /users/{id} [patch]
func (c *UserController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationFailed(ctx, util.BindingMessages(err))
		return
	}

	user, err := c.UserService.UpdateUser(id, service.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "Usuário não encontrado")
		case errors.Is(err, util.ErrEmailRegistered):
			util.ValidationFailed(ctx, map[string]string{"email": "Este email já está em uso."})
		default:
			util.LogInternalError(ctx, "Erro ao atualizar o usuário.", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Usuário atualizado com sucesso!",
		"user":    user,
	})
}

// Destroy godoc
// @Summary Remove um usuário e seus registros dependentes
// @Tags Usuários
// @Security ApiKeyAuth
// @Param id path int true "ID do usuário"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /users/{id} [delete]
func (c *UserController) Destroy(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	if err := c.UserService.DeleteUser(id); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "Usuário não encontrado")
			return
		}
		util.LogInternalError(ctx, "Erro ao remover o usuário.", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
