package controller

import (
	"errors"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/service"
	"mindscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionnaireController struct {
	Quests *service.QuestionnaireService
}

func NewQuestionnaireController(quests *service.QuestionnaireService) *QuestionnaireController {
	return &QuestionnaireController{Quests: quests}
}

// requireOwned loads the questionnaire from the :id path param and rejects
// the request when it belongs to another organization.
func (ctl *QuestionnaireController) requireOwned(c *gin.Context) (*model.Questionnaire, bool) {
	claims := util.GetUserFromContext(c)

	id, ok := parseID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid questionnaire id")
		return nil, false
	}

	q, err := ctl.Quests.Get(id)
	if err != nil {
		if util.IsNotFound(err) {
			util.NotFound(c, err.Error())
		} else {
			util.LogInternalError(c, err)
		}
		return nil, false
	}
	if q.OrganizationID != claims.OrganizationID {
		util.Forbidden(c)
		return nil, false
	}
	return q, true
}

// Create godoc
// @Summary Create a questionnaire
// @Tags questionnaires
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.QuestionnaireRequest true "Questionnaire data"
// @Success 201 {object} util.Response
// @Router /api/v1/questionnaires [post]
func (ctl *QuestionnaireController) Create(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	var req service.QuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	q, err := ctl.Quests.Create(claims.OrganizationID, req)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Created(c, q)
}

// List godoc
// @Summary List the organization's questionnaires
// @Tags questionnaires
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires [get]
func (ctl *QuestionnaireController) List(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	page, limit := pagination(c)

	qs, total, err := ctl.Quests.List(claims.OrganizationID, page, limit)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: qs, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary Get a questionnaire with its questions
// @Tags questionnaires
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id} [get]
func (ctl *QuestionnaireController) Get(c *gin.Context) {
	q, ok := ctl.requireOwned(c)
	if !ok {
		return
	}

	questions, err := ctl.Quests.ListQuestions(q.ID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, gin.H{"questionnaire": q, "questions": questions})
}

// Update godoc
// @Summary Update a questionnaire
// @Tags questionnaires
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Param request body service.QuestionnaireRequest true "Questionnaire data"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id} [put]
func (ctl *QuestionnaireController) Update(c *gin.Context) {
	q, ok := ctl.requireOwned(c)
	if !ok {
		return
	}

	var req service.QuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	updated, err := ctl.Quests.Update(q.ID, req)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, updated)
}

// Delete godoc
// @Summary Delete a questionnaire
// @Tags questionnaires
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id} [delete]
func (ctl *QuestionnaireController) Delete(c *gin.Context) {
	q, ok := ctl.requireOwned(c)
	if !ok {
		return
	}
	if err := ctl.Quests.Delete(q.ID); err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, nil)
}

// Publish godoc
// @Summary Publish a questionnaire so its share link accepts submissions
// @Tags questionnaires
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id}/publish [post]
func (ctl *QuestionnaireController) Publish(c *gin.Context) {
	ctl.setPublished(c, true)
}

// Unpublish godoc
// @Summary Take a questionnaire offline
// @Tags questionnaires
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id}/unpublish [post]
func (ctl *QuestionnaireController) Unpublish(c *gin.Context) {
	ctl.setPublished(c, false)
}

func (ctl *QuestionnaireController) setPublished(c *gin.Context, published bool) {
	q, ok := ctl.requireOwned(c)
	if !ok {
		return
	}
	updated, err := ctl.Quests.SetPublished(q.ID, published)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, updated)
}

// CreateQuestion godoc
// @Summary Add a question to a questionnaire
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Param request body service.QuestionRequest true "Question data"
// @Success 201 {object} util.Response
// @Router /api/v1/questionnaires/{id}/questions [post]
func (ctl *QuestionnaireController) CreateQuestion(c *gin.Context) {
	q, ok := ctl.requireOwned(c)
	if !ok {
		return
	}

	var req service.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	question, err := ctl.Quests.CreateQuestion(q.ID, req)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Created(c, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Param questionId path int true "Question ID"
// @Param request body service.QuestionRequest true "Question data"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id}/questions/{questionId} [put]
func (ctl *QuestionnaireController) UpdateQuestion(c *gin.Context) {
	if _, ok := ctl.requireOwned(c); !ok {
		return
	}

	questionID, ok := parseID(c, "questionId")
	if !ok {
		util.BadRequest(c, "invalid question id")
		return
	}

	var req service.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	question, err := ctl.Quests.UpdateQuestion(questionID, req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(c, err.Error())
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Questionnaire ID"
// @Param questionId path int true "Question ID"
// @Success 200 {object} util.Response
// @Router /api/v1/questionnaires/{id}/questions/{questionId} [delete]
func (ctl *QuestionnaireController) DeleteQuestion(c *gin.Context) {
	if _, ok := ctl.requireOwned(c); !ok {
		return
	}

	questionID, ok := parseID(c, "questionId")
	if !ok {
		util.BadRequest(c, "invalid question id")
		return
	}

	if err := ctl.Quests.DeleteQuestion(questionID); err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, nil)
}

// PublicForm godoc
// @Summary Fetch a published questionnaire form by share token
// @Tags public
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/v1/forms/{token} [get]
func (ctl *QuestionnaireController) PublicForm(c *gin.Context) {
	form, err := ctl.Quests.GetPublicForm(c.Param("token"))
	if err != nil {
		if util.IsNotFound(err) || errors.Is(err, util.ErrNotPublished) {
			util.NotFound(c, "form not found")
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, form)
}
