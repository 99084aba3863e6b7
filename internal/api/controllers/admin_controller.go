package controllers

import (
	"github.com/gin-gonic/gin"

	"roamly/internal/services"
	"roamly/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GetStats godoc
// @Summary Platform-wide counters
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (a *AdminController) GetStats(c *gin.Context) {
	stats, err := a.adminService.GetStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}

// ListUsers godoc
// @Summary List registered users
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	users, err := a.adminService.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// DeleteUser godoc
// @Summary Delete a user and their trips
// @Tags Admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id} [delete]
func (a *AdminController) DeleteUser(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := a.adminService.DeleteUser(c.Request.Context(), callerID, targetID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}
