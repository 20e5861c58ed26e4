package controller

import (
	"mindscreen_backend/internal/service"
	"mindscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	Exports *service.ExportService
	Quests  *service.QuestionnaireService
}

func NewExportController(exports *service.ExportService, quests *service.QuestionnaireService) *ExportController {
	return &ExportController{Exports: exports, Quests: quests}
}

// ExportCSV godoc
// @Summary Export a questionnaire's responses as CSV
// @Tags exports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id}/export [post]
func (ctl *ExportController) ExportCSV(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	id, ok := parseID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid questionnaire id")
		return
	}

	q, err := ctl.Quests.Get(id)
	if err != nil {
		if util.IsNotFound(err) {
			util.NotFound(c, err.Error())
			return
		}
		util.LogInternalError(c, err)
		return
	}
	if q.OrganizationID != claims.OrganizationID {
		util.Forbidden(c)
		return
	}

	result, err := ctl.Exports.ExportCSV(c.Request.Context(), id)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, result)
}
