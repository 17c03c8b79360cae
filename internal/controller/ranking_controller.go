package controller

import (
	"errors"
	"net/http"

	"quiz_app_backend/internal/service"
	"quiz_app_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RankingController struct {
	RankingService *service.RankingService
}

func NewRankingController(rankingService *service.RankingService) *RankingController {
	return &RankingController{RankingService: rankingService}
}

// General godoc
// @Summary Ranking geral por soma das pontuações de participação
// @Tags Rankings
// @Produce json
// @Success 200 {array} model.RankingEntry
// @Failure 404 {object} map[string]string
// @Router /ranking/general [get]
func (c *RankingController) General(ctx *gin.Context) {
	entries, err := c.RankingService.General()
	if err != nil {
		if errors.Is(err, service.ErrEmptyRanking) {
			util.Message(ctx, http.StatusNotFound, "Nenhuma participação encontrada para gerar o ranking.")
			return
		}
		util.LogInternalError(ctx, "Erro ao gerar o ranking", err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// ByQuiz godoc
// @Summary Ranking de um quiz, com todos os usuários e pontuação zero por padrão
// @Tags Rankings
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "ID do quiz"
// @Success 200 {array} model.RankingEntry
// @Failure 404 {object} map[string]string
// @Router /ranking/quiz/{quizId} [get]
func (c *RankingController) ByQuiz(ctx *gin.Context) {
	quizID := util.MustParseUint(ctx.Param("quizId"))

	entries, err := c.RankingService.ByQuiz(quizID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, "Quiz não encontrado. Verifique o ID e tente novamente.")
		case errors.Is(err, service.ErrEmptyRanking):
			util.Message(ctx, http.StatusNotFound, "Nenhuma pontuação encontrada para este quiz.")
		default:
			util.LogInternalError(ctx, "Erro ao gerar o ranking", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, entries)
}
