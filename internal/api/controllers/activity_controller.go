package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"roamly/internal/models/request_models"
	"roamly/internal/services"
	"roamly/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// ListActivities godoc
// @Summary List activities with optional filters
// @Tags Activities
// @Produce json
// @Param cityId query string false "City ID"
// @Param type query string false "Activity type"
// @Param minCost query number false "Minimum estimated cost (inclusive)"
// @Param maxCost query number false "Maximum estimated cost (inclusive)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /activities [get]
func (ac *ActivityController) ListActivities(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	filter := request_models.ActivityFilter{
		Type: c.Query("type"),
	}
	if raw := c.Query("cityId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "cityId must be a valid UUID")
			return
		}
		filter.CityID = id.String()
	}
	if raw := c.Query("minCost"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "minCost must be a number")
			return
		}
		filter.MinCost = &v
	}
	if raw := c.Query("maxCost"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "maxCost must be a number")
			return
		}
		filter.MaxCost = &v
	}

	activities, err := ac.activityService.ListActivities(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

// GetActivity godoc
// @Summary Get one activity
// @Tags Activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Router /activities/{id} [get]
func (ac *ActivityController) GetActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	activity, err := ac.activityService.GetActivity(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity fetched successfully")
}

// CreateActivity godoc
// @Summary Create an activity (admin)
// @Tags Activities
// @Accept json
// @Produce json
// @Param request body request_models.CreateActivityRequest true "Activity payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities [post]
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A valid city_id, name and activity type are required")
		return
	}

	activity, err := ac.activityService.CreateActivity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, activity, "Activity created successfully")
}

// UpdateActivity godoc
// @Summary Update an activity (admin)
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body request_models.UpdateActivityRequest true "Activity payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/{id} [put]
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := ac.activityService.UpdateActivity(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

// DeleteActivity godoc
// @Summary Delete an activity (admin)
// @Tags Activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities/{id} [delete]
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.activityService.DeleteActivity(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}
