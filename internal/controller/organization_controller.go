package controller

import (
	"errors"
	"mindscreen_backend/internal/service"
	"mindscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type OrganizationController struct {
	Orgs *service.OrganizationService
}

func NewOrganizationController(orgs *service.OrganizationService) *OrganizationController {
	return &OrganizationController{Orgs: orgs}
}

// Get godoc
// @Summary Get the caller's organization
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/v1/organization [get]
func (ctl *OrganizationController) Get(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	org, err := ctl.Orgs.Get(claims.OrganizationID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, org)
}

// Update godoc
// @Summary Update organization details
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.OrganizationRequest true "Organization data"
// @Success 200 {object} util.Response
// @Router /api/v1/organization [put]
func (ctl *OrganizationController) Update(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	var req service.OrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	org, err := ctl.Orgs.Update(claims.OrganizationID, req)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, org)
}

// ListMembers godoc
// @Summary List organization members
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response
// @Router /api/v1/organization/members [get]
func (ctl *OrganizationController) ListMembers(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	page, limit := pagination(c)

	users, total, err := ctl.Orgs.ListMembers(claims.OrganizationID, page, limit)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// CreateMember godoc
// @Summary Add a member to the organization
// @Tags organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.MemberRequest true "Member data"
// @Success 201 {object} util.Response
// @Router /api/v1/organization/members [post]
func (ctl *OrganizationController) CreateMember(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	var req service.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Orgs.CreateMember(claims.OrganizationID, req)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.BadRequest(c, err.Error())
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Created(c, user)
}

// RemoveMember godoc
// @Summary Remove a member from the organization
// @Tags organizations
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} util.Response
// @Router /api/v1/organization/members/{id} [delete]
func (ctl *OrganizationController) RemoveMember(c *gin.Context) {
	claims := util.GetUserFromContext(c)

	id, ok := parseID(c, "id")
	if !ok {
		util.BadRequest(c, "invalid user id")
		return
	}

	if err := ctl.Orgs.RemoveMember(claims.OrganizationID, id); err != nil {
		if util.IsNotFound(err) {
			util.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(c)
			return
		}
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, nil)
}
