package controller

import (
	"errors"
	"mindscreen_backend/internal/scoring"
	"mindscreen_backend/internal/service"
	"mindscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScoringConfigController struct {
	Configs *service.ScoringConfigService
	Quests  *service.QuestionnaireService
}

func NewScoringConfigController(configs *service.ScoringConfigService, quests *service.QuestionnaireService) *ScoringConfigController {
	return &ScoringConfigController{Configs: configs, Quests: quests}
}

func (ctl *ScoringConfigController) requireOwnedQuestionnaire(c *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(c)

	id, ok := parseID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid questionnaire id")
		return 0, false
	}

	q, err := ctl.Quests.Get(id)
	if err != nil {
		if util.IsNotFound(err) {
			util.NotFound(c, err.Error())
		} else {
			util.LogInternalError(c, err)
		}
		return 0, false
	}
	if q.OrganizationID != claims.OrganizationID {
		util.Forbidden(c)
		return 0, false
	}
	return q.ID, true
}

func isRuleError(err error) bool {
	return errors.Is(err, scoring.ErrUnknownMethod) || errors.Is(err, scoring.ErrInvalidRules)
}

// Create godoc
// @Summary Create a scoring configuration
// @Tags scoring-configs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Param request body service.ScoringConfigRequest true "Scoring configuration"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/v1/questionnaires/{id}/scoring-configs [post]
func (ctl *ScoringConfigController) Create(c *gin.Context) {
	questionnaireID, ok := ctl.requireOwnedQuestionnaire(c)
	if !ok {
		return
	}

	var req service.ScoringConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	cfg, err := ctl.Configs.Create(questionnaireID, req)
	if err != nil {
		if isRuleError(err) {
			util.BadRequest(c, err.Error())
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Created(c, cfg)
}

// List godoc
// @Summary List a questionnaire's scoring configurations
// @Tags scoring-configs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id}/scoring-configs [get]
func (ctl *ScoringConfigController) List(c *gin.Context) {
	questionnaireID, ok := ctl.requireOwnedQuestionnaire(c)
	if !ok {
		return
	}

	configs, err := ctl.Configs.List(questionnaireID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, configs)
}

// Update godoc
// @Summary Update a scoring configuration
// @Tags scoring-configs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Param configId path int true "Config ID"
// @Param request body service.ScoringConfigRequest true "Scoring configuration"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id}/scoring-configs/{configId} [put]
func (ctl *ScoringConfigController) Update(c *gin.Context) {
	if _, ok := ctl.requireOwnedQuestionnaire(c); !ok {
		return
	}

	configID, ok := parseID(c, "configId")
	if !ok {
		util.BadRequest(c, "invalid config id")
		return
	}

	var req service.ScoringConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	cfg, err := ctl.Configs.Update(configID, req)
	if err != nil {
		if isRuleError(err) {
			util.BadRequest(c, err.Error())
			return
		}
		if util.IsNotFound(err) {
			util.NotFound(c, err.Error())
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, cfg)
}

// Delete godoc
// @Summary Delete a scoring configuration
// @Tags scoring-configs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Param configId path int true "Config ID"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id}/scoring-configs/{configId} [delete]
func (ctl *ScoringConfigController) Delete(c *gin.Context) {
	if _, ok := ctl.requireOwnedQuestionnaire(c); !ok {
		return
	}

	configID, ok := parseID(c, "configId")
	if !ok {
		util.BadRequest(c, "invalid config id")
		return
	}

	if err := ctl.Configs.Delete(configID); err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, nil)
}

// Activate godoc
// @Summary Activate one scoring configuration, deactivating its siblings
// @Tags scoring-configs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Param configId path int true "Config ID"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id}/scoring-configs/{configId}/activate [post]
func (ctl *ScoringConfigController) Activate(c *gin.Context) {
	questionnaireID, ok := ctl.requireOwnedQuestionnaire(c)
	if !ok {
		return
	}

	configID, ok := parseID(c, "configId")
	if !ok {
		util.BadRequest(c, "invalid config id")
		return
	}

	if err := ctl.Configs.Activate(questionnaireID, configID); err != nil {
		if util.IsNotFound(err) {
			util.NotFound(c, err.Error())
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, nil)
}
