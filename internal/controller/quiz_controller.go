package controller

import (
	"errors"
	"net/http"

	"quiz_app_backend/internal/service"
	"quiz_app_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
	Storage     *service.StorageService
}

func NewQuizController(quizService *service.QuizService, storage *service.StorageService) *QuizController {
	return &QuizController{
		QuizService: quizService,
		Storage:     storage,
	}
}

// Index godoc
// @Summary Lista todos os quizzes
// @Tags Quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Quiz
// @Failure 404 {object} map[string]string "Nenhum quiz cadastrado"
// @Router /quizzes [get]
func (c *QuizController) Index(ctx *gin.Context) {
	quizzes, err := c.QuizService.List()
	if err != nil {
		util.LogInternalError(ctx, "Erro ao buscar os quizzes", err)
		return
	}

	if len(quizzes) == 0 {
		util.Message(ctx, http.StatusNotFound, "Nenhum quiz encontrado no momento.")
		return
	}

	ctx.JSON(http.StatusOK, quizzes)
}

// Store godoc
// @Summary Cria um quiz
// @Description Aceita multipart com title, description e imagem opcional
// @Tags Quizzes
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "Título"
// @Param description formData string true "Descrição"
// @Param image formData file false "Imagem (jpeg, png, jpg, gif, svg; máx. 2 MiB)"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /quizzes [post]
func (c *QuizController) Store(ctx *gin.Context) {
	title := ctx.PostForm("title")
	description := ctx.PostForm("description")

	fields := make(map[string]string)
	if title == "" {
		fields["title"] = "O campo title é obrigatório."
	}
	if len(title) > 255 {
		fields["title"] = "O campo title excede o tamanho máximo de 255."
	}
	if description == "" {
		fields["description"] = "O campo description é obrigatório."
	}
	if len(fields) > 0 {
		util.ValidationFailed(ctx, fields)
		return
	}

	imagePath, ok := storeUploadedImage(ctx, c.Storage)
	if !ok {
		return
	}

	quiz, err := c.QuizService.Create(title, description, imagePath)
	if err != nil {
		// O registro falhou depois do upload; o blob recém-criado não pode
		// ficar órfão com referência em lugar nenhum.
		c.Storage.RemoveImage(ctx.Request.Context(), imagePath)
		util.LogInternalError(ctx, "Erro ao criar o quiz", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Quiz criado com sucesso!",
		"quiz":    quiz,
	})
}

// Show godoc
// @Summary Exibe um quiz
// @Tags Quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "ID do quiz"
// @Success 200 {object} model.Quiz
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId} [get]
func (c *QuizController) Show(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("quizId"))

	quiz, err := c.QuizService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz não encontrado. Verifique o ID e tente novamente.")
			return
		}
		util.LogInternalError(ctx, "Erro ao buscar o quiz", err)
		return
	}

	ctx.JSON(http.StatusOK, quiz)
}

// Update godoc
// @Summary Atualiza um quiz
// @Description Atualização parcial; uma imagem nova substitui e apaga a antiga
// @Tags Quizzes
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "ID do quiz"
// @Param title formData string false "Título"
// @Param description formData string false "Descrição"
// @Param image formData file false "Nova imagem"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /quizzes/{quizId} [patch]
func (c *QuizController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("quizId"))

	quiz, err := c.QuizService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz não encontrado. Verifique o ID e tente novamente.")
			return
		}
		util.LogInternalError(ctx, "Erro ao buscar o quiz", err)
		return
	}

	var input service.UpdateQuizInput
	if title, ok := ctx.GetPostForm("title"); ok {
		if len(title) > 255 {
			util.ValidationFailed(ctx, map[string]string{"title": "O campo title excede o tamanho máximo de 255."})
			return
		}
		input.Title = &title
	}
	if description, ok := ctx.GetPostForm("description"); ok {
		input.Description = &description
	}

	oldImage := quiz.Image
	newImage, ok := storeUploadedImage(ctx, c.Storage)
	if !ok {
		return
	}
	if newImage != "" {
		input.Image = &newImage
	}

	updated, err := c.QuizService.Update(id, input)
	if err != nil {
		c.Storage.RemoveImage(ctx.Request.Context(), newImage)
		util.LogInternalError(ctx, "Erro inesperado ao atualizar o quiz.", err)
		return
	}

	// A imagem antiga só sai do armazenamento depois que a referência nova
	// está gravada.
	if newImage != "" && oldImage != "" {
		c.Storage.RemoveImage(ctx.Request.Context(), oldImage)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Quiz atualizado com sucesso!",
		"quiz":    updated,
	})
}

// Destroy godoc
// @Summary Remove um quiz, seus dependentes e a imagem armazenada
// @Tags Quizzes
// @Security ApiKeyAuth
// @Param quizId path int true "ID do quiz"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId} [delete]
func (c *QuizController) Destroy(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("quizId"))

	quiz, err := c.QuizService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz não encontrado. Verifique o ID e tente novamente.")
			return
		}
		util.LogInternalError(ctx, "Erro ao buscar o quiz", err)
		return
	}

	if err := c.QuizService.Delete(id); err != nil {
		util.LogInternalError(ctx, "Erro ao remover o quiz", err)
		return
	}

	c.Storage.RemoveImage(ctx.Request.Context(), quiz.Image)

	ctx.Status(http.StatusNoContent)
}
