package controller

import (
	"errors"
	"net/http"

	"quiz_app_backend/internal/service"
	"quiz_app_backend/internal/util"
	"quiz_app_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ParticipationController struct {
	ParticipationService *service.ParticipationService
}

func NewParticipationController(participationService *service.ParticipationService) *ParticipationController {
	return &ParticipationController{ParticipationService: participationService}
}

type submitRequest struct {
	Answers []service.AnswerInput `json:"answers"`
}

// Index godoc
// @Summary Lista todas as participações com usuário e quiz
// @Tags Participações
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.Participation
// @Failure 404 {object} map[string]string
// @Router /participations [get]
func (c *ParticipationController) Index(ctx *gin.Context) {
	participations, err := c.ParticipationService.Index()
	if err != nil {
		util.LogInternalError(ctx, "Erro ao buscar as participações", err)
		return
	}

	if len(participations) == 0 {
		util.Message(ctx, http.StatusNotFound, "Nenhuma participação encontrada.")
		return
	}

	ctx.JSON(http.StatusOK, participations)
}

// Show godoc
// @Summary Exibe uma participação
// @Tags Participações
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da participação"
// @Success 200 {object} model.Participation
// @Failure 404 {object} map[string]string
// @Router /participations/{id} [get]
func (c *ParticipationController) Show(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	participation, err := c.ParticipationService.Show(id)
	if err != nil {
		if errors.Is(err, util.ErrParticipationMissing) {
			util.NotFound(ctx, "Participação não encontrada.")
			return
		}
		util.LogInternalError(ctx, "Erro ao buscar a participação", err)
		return
	}

	ctx.JSON(http.StatusOK, participation)
}

// IndexByQuiz godoc
// @Summary Lista as participações de um quiz
// @Tags Participações
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "ID do quiz"
// @Success 200 {array} model.Participation
// @Failure 404 {object} map[string]string
// @Router /quizzes/{quizId}/participations [get]
func (c *ParticipationController) IndexByQuiz(ctx *gin.Context) {
	quizID := util.MustParseUint(ctx.Param("quizId"))

	participations, err := c.ParticipationService.ListByQuiz(quizID)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, "Quiz não encontrado. Verifique o ID e tente novamente.")
			return
		}
		util.LogInternalError(ctx, "Erro ao buscar as participações", err)
		return
	}

	if len(participations) == 0 {
		util.Message(ctx, http.StatusNotFound, "Nenhuma participação encontrada.")
		return
	}

	ctx.JSON(http.StatusOK, participations)
}

// Store godoc
// @Summary Registra a participação do usuário autenticado em um quiz
// @Description Corrige as respostas, grava a pontuação e fecha a participação em uma única transação
// @Tags Participações
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "ID do quiz"
// @Param payload body submitRequest true "Respostas"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Participação duplicada"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /quizzes/{quizId}/participations [post]
func (c *ParticipationController) Store(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Usuário não autenticado. Não há sessão ativa.")
		return
	}

	quizID := util.MustParseUint(ctx.Param("quizId"))

	var req submitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		monitoring.SubmissionCounter.WithLabelValues("invalid").Inc()
		util.ValidationFailed(ctx, map[string]string{"answers": "O campo answers é obrigatório."})
		return
	}

	participation, userScore, err := c.ParticipationService.Submit(claims.UserID, quizID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			monitoring.SubmissionCounter.WithLabelValues("quiz_not_found").Inc()
			util.NotFound(ctx, "Quiz não encontrado.")
		case errors.Is(err, util.ErrAlreadyParticipated):
			monitoring.SubmissionCounter.WithLabelValues("duplicate").Inc()
			util.Error(ctx, http.StatusBadRequest, "Você já participou deste quiz.")
		default:
			if ve, ok := util.AsValidationError(err); ok {
				monitoring.SubmissionCounter.WithLabelValues("invalid").Inc()
				util.ValidationFailed(ctx, ve.Fields)
				return
			}
			monitoring.SubmissionCounter.WithLabelValues("error").Inc()
			util.LogInternalError(ctx, "Erro ao registrar a participação", err)
		}
		return
	}

	monitoring.SubmissionCounter.WithLabelValues("accepted").Inc()

	ctx.JSON(http.StatusCreated, gin.H{
		"participation": participation,
		"user_score":    userScore,
		"message":       "Participação registrada com sucesso!",
	})
}
