package controller

import (
	"errors"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/scoring"
	"mindscreen_backend/internal/service"
	"mindscreen_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ResponseController struct {
	Responses *service.ResponseService
	Scoring   *service.ScoringService
	Quests    *service.QuestionnaireService
}

func NewResponseController(responses *service.ResponseService, scoringSvc *service.ScoringService, quests *service.QuestionnaireService) *ResponseController {
	return &ResponseController{Responses: responses, Scoring: scoringSvc, Quests: quests}
}

// requireOwnedResponse loads a response and verifies its questionnaire
// belongs to the caller's organization.
func (ctl *ResponseController) requireOwnedResponse(c *gin.Context) (*model.Response, bool) {
	claims := util.GetUserFromContext(c)

	id, ok := parseID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid response id")
		return nil, false
	}

	resp, err := ctl.Responses.GetDetail(id)
	if err != nil {
		if util.IsNotFound(err) {
			util.NotFound(c, err.Error())
		} else {
			util.LogInternalError(c, err)
		}
		return nil, false
	}

	q, err := ctl.Quests.Get(resp.QuestionnaireID)
	if err != nil {
		util.LogInternalError(c, err)
		return nil, false
	}
	if q.OrganizationID != claims.OrganizationID {
		util.Forbidden(c)
		return nil, false
	}
	return resp, true
}

// Submit godoc
// @Summary Submit a response to a published questionnaire
// @Tags public
// @Accept json
// @Produce json
// @Param token path string true "Share token"
// @Param request body service.SubmitRequest true "Answers"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/forms/{token}/responses [post]
func (ctl *ResponseController) Submit(c *gin.Context) {
	var req service.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	resp, err := ctl.Responses.Submit(c.Param("token"), req)
	if err != nil {
		switch {
		case util.IsNotFound(err), errors.Is(err, util.ErrNotPublished):
			util.NotFound(c, "form not found")
		case errors.Is(err, util.ErrQuestionNotFound):
			util.BadRequest(c, err.Error())
		default:
			util.LogInternalError(c, err)
		}
		return
	}
	util.Created(c, resp)
}

// List godoc
// @Summary List responses for a questionnaire
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id}/responses [get]
func (ctl *ResponseController) List(c *gin.Context) {
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

	page, limit := pagination(c)
	rs, total, err := ctl.Responses.List(id, page, limit)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: rs, Total: total, Page: page, Limit: limit})
}

// Detail godoc
// @Summary Get a response with its answers
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Response ID"
// @Success 200 {object} util.Response
// @Router /api/v1/responses/{id} [get]
func (ctl *ResponseController) Detail(c *gin.Context) {
	resp, ok := ctl.requireOwnedResponse(c)
	if !ok {
		return
	}
	util.Success(c, resp)
}

// Delete godoc
// @Summary Delete a response
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Response ID"
// @Success 200 {object} util.Response
// @Router /api/v1/responses/{id} [delete]
func (ctl *ResponseController) Delete(c *gin.Context) {
	resp, ok := ctl.requireOwnedResponse(c)
	if !ok {
		return
	}
	if err := ctl.Responses.Delete(resp.ID); err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, nil)
}

// Score godoc
// @Summary Score (or re-score) a response against the active configuration
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Response ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/v1/responses/{id}/score [post]
func (ctl *ResponseController) Score(c *gin.Context) {
	resp, ok := ctl.requireOwnedResponse(c)
	if !ok {
		return
	}

	result, err := ctl.Scoring.ScoreResponse(resp.ID)
	if err != nil {
		switch {
		case util.IsNotFound(err):
			util.NotFound(c, err.Error())
		case errors.Is(err, scoring.ErrUnknownMethod),
			errors.Is(err, scoring.ErrInvalidRules),
			errors.Is(err, util.ErrAmbiguousConfig):
			util.Error(c, http.StatusInternalServerError, "invalid scoring configuration")
		default:
			util.LogInternalError(c, err)
		}
		return
	}
	util.Success(c, result)
}
