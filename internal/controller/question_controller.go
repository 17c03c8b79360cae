package controller

import (
	"errors"
	"net/http"
	"strconv"

	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/service"
	"quiz_app_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
	Storage         *service.StorageService
}

func NewQuestionController(questionService *service.QuestionService, storage *service.StorageService) *QuestionController {
	return &QuestionController{
		QuestionService: questionService,
		Storage:         storage,
	}
}

// Index godoc
// @Summary Lista as perguntas de um quiz
// @Tags Perguntas
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "ID do quiz"
// @Success 200 {array} model.Question
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId}/questions [get]
func (c *QuestionController) Index(ctx *gin.Context) {
	quizID := util.MustParseUint(ctx.Param("quizId"))

	questions, err := c.QuestionService.ListByQuiz(quizID)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz não encontrado. Verifique o ID e tente novamente.")
			return
		}
		util.LogInternalError(ctx, "Erro ao buscar as perguntas", err)
		return
	}

	if len(questions) == 0 {
		util.Message(ctx, http.StatusNotFound, "Nenhuma pergunta encontrada para este quiz.")
		return
	}

	ctx.JSON(http.StatusOK, questions)
}

// Store godoc
// @Summary Cria uma pergunta de verdadeiro ou falso
// @Tags Perguntas
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "ID do quiz"
// @Param text formData string true "Enunciado"
// @Param correct_answer formData boolean true "Resposta correta"
// @Param image formData file false "Imagem (jpeg, png, jpg, gif, svg; máx. 2 MiB)"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /quizzes/{quizId}/questions [post]
func (c *QuestionController) Store(ctx *gin.Context) {
	quizID := util.MustParseUint(ctx.Param("quizId"))

	text := ctx.PostForm("text")
	rawAnswer, hasAnswer := ctx.GetPostForm("correct_answer")

	fields := make(map[string]string)
	if text == "" {
		fields["text"] = "O campo text é obrigatório."
	}
	var correctAnswer bool
	if !hasAnswer {
		fields["correct_answer"] = "O campo correct_answer é obrigatório."
	} else {
		parsed, err := strconv.ParseBool(rawAnswer)
		if err != nil {
			fields["correct_answer"] = "O campo correct_answer deve ser verdadeiro ou falso."
		}
		correctAnswer = parsed
	}
	if len(fields) > 0 {
		util.ValidationFailed(ctx, fields)
		return
	}

	imagePath, ok := storeUploadedImage(ctx, c.Storage)
	if !ok {
		return
	}

	question, err := c.QuestionService.Create(quizID, text, correctAnswer, imagePath)
	if err != nil {
		c.Storage.RemoveImage(ctx.Request.Context(), imagePath)
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz não encontrado. Verifique o ID e tente novamente.")
			return
		}
		util.LogInternalError(ctx, "Erro ao criar a pergunta", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":  "Pergunta criada com sucesso!",
		"question": question,
	})
}

// Show godoc
// @Summary Exibe uma pergunta de um quiz
// @Tags Perguntas
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "ID do quiz"
// @Param id path int true "ID da pergunta"
// @Success 200 {object} model.Question
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId}/questions/{id} [get]
func (c *QuestionController) Show(ctx *gin.Context) {
	quizID := util.MustParseUint(ctx.Param("quizId"))
	id := util.MustParseUint(ctx.Param("id"))

	question, err := c.QuestionService.GetScoped(quizID, id)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Pergunta não encontrada. Verifique o ID e tente novamente.")
			return
		}
		util.LogInternalError(ctx, "Erro ao buscar a pergunta", err)
		return
	}

	ctx.JSON(http.StatusOK, question)
}

// Update godoc
// @Summary Atualiza uma pergunta
// @Description Atualização parcial; uma imagem nova substitui e apaga a antiga
// @Tags Perguntas
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "ID do quiz"
// @Param id path int true "ID da pergunta"
// @Param text formData string false "Enunciado"
// @Param correct_answer formData boolean false "Resposta correta"
// @Param image formData file false "Nova imagem"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /quizzes/{quizId}/questions/{id} [patch]
func (c *QuestionController) Update(ctx *gin.Context) {
	quizID := util.MustParseUint(ctx.Param("quizId"))
	id := util.MustParseUint(ctx.Param("id"))

	question, err := c.QuestionService.GetScoped(quizID, id)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Pergunta não encontrada. Verifique o ID e tente novamente.")
			return
		}
		util.LogInternalError(ctx, "Erro ao buscar a pergunta", err)
		return
	}

	c.applyUpdate(ctx, question)
}

// UpdateByID godoc
// @Summary Atualiza uma pergunta pelo ID, sem escopo de quiz
// @Tags Perguntas
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da pergunta"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /questions/{id} [patch]
func (c *QuestionController) UpdateByID(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	question, err := c.QuestionService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Pergunta não encontrada. Verifique o ID e tente novamente.")
			return
		}
		util.LogInternalError(ctx, "Erro ao buscar a pergunta", err)
		return
	}

	c.applyUpdate(ctx, question)
}

func (c *QuestionController) applyUpdate(ctx *gin.Context, question *model.Question) {
	var input service.UpdateQuestionInput
	if text, ok := ctx.GetPostForm("text"); ok {
		input.Text = &text
	}
	if rawAnswer, ok := ctx.GetPostForm("correct_answer"); ok {
		parsed, err := strconv.ParseBool(rawAnswer)
		if err != nil {
			util.ValidationFailed(ctx, map[string]string{"correct_answer": "O campo correct_answer deve ser verdadeiro ou falso."})
			return
		}
		input.CorrectAnswer = &parsed
	}

	oldImage := question.Image
	newImage, ok := storeUploadedImage(ctx, c.Storage)
	if !ok {
		return
	}
	if newImage != "" {
		input.Image = &newImage
	}

	updated, err := c.QuestionService.Update(question.ID, input)
	if err != nil {
		c.Storage.RemoveImage(ctx.Request.Context(), newImage)
		util.LogInternalError(ctx, "Erro ao atualizar a pergunta", err)
		return
	}

	if newImage != "" && oldImage != "" {
		c.Storage.RemoveImage(ctx.Request.Context(), oldImage)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Pergunta atualizada com sucesso!",
		"question": updated,
	})
}

// Destroy godoc
// @Summary Remove uma pergunta, suas respostas e a imagem armazenada
// @Tags Perguntas
// @Security ApiKeyAuth
// @Param quizId path int true "ID do quiz"
// @Param id path int true "ID da pergunta"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId}/questions/{id} [delete]
func (c *QuestionController) Destroy(ctx *gin.Context) {
	quizID := util.MustParseUint(ctx.Param("quizId"))
	id := util.MustParseUint(ctx.Param("id"))

	question, err := c.QuestionService.GetScoped(quizID, id)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Pergunta não encontrada. Verifique o ID e tente novamente.")
			return
		}
		util.LogInternalError(ctx, "Erro ao buscar a pergunta", err)
		return
	}

	c.destroy(ctx, question)
}

// DestroyByID godoc
// @Summary Remove uma pergunta pelo ID, sem escopo de quiz
// @Tags Perguntas
// @Security ApiKeyAuth
// @Param id path int true "ID da pergunta"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /questions/{id} [delete]
func (c *QuestionController) DestroyByID(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	question, err := c.QuestionService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Pergunta não encontrada. Verifique o ID e tente novamente.")
			return
		}
		util.LogInternalError(ctx, "Erro ao buscar a pergunta", err)
		return
	}

	c.destroy(ctx, question)
}

func (c *QuestionController) destroy(ctx *gin.Context, question *model.Question) {
	if err := c.QuestionService.Delete(question.ID); err != nil {
		util.LogInternalError(ctx, "Erro ao remover a pergunta", err)
		return
	}

	c.Storage.RemoveImage(ctx.Request.Context(), question.Image)

	ctx.Status(http.StatusNoContent)
}
