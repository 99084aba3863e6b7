package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamly/internal/models/request_models"
	"roamly/internal/services"
	"roamly/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title is required")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

// ListTrips godoc
// @Summary List the caller's trips
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get one owned trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	trip, err := t.tripService.GetTrip(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update trip title, description or dates
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [put]
func (t *TripController) UpdateTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), userID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete an owned trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), userID, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// AddCity godoc
// @Summary Add a city visit to a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.AddCityToTripRequest true "City payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/cities [post]
func (t *TripController) AddCity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.AddCityToTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A valid city_id is required")
		return
	}

	trip, err := t.tripService.AddCity(c.Request.Context(), userID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "City added to trip")
}

// RemoveCity godoc
// @Summary Remove a city visit from a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Param cityId path string true "City ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/cities/{cityId} [delete]
func (t *TripController) RemoveCity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cityID, ok := parseIDParam(c, "cityId")
	if !ok {
		return
	}

	trip, err := t.tripService.RemoveCity(c.Request.Context(), userID, tripID, cityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "City removed from trip")
}

// AddActivity godoc
// @Summary Book an activity on a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.AddActivityToTripRequest true "Activity payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/activities [post]
func (t *TripController) AddActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.AddActivityToTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A valid activity_id is required")
		return
	}

	trip, err := t.tripService.AddActivity(c.Request.Context(), userID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Activity added to trip")
}

// RemoveActivity godoc
// @Summary Remove a booked activity from a trip
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/activities/{activityId} [delete]
func (t *TripController) RemoveActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	activityID, ok := parseIDParam(c, "activityId")
	if !ok {
		return
	}

	trip, err := t.tripService.RemoveActivity(c.Request.Context(), userID, tripID, activityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Activity removed from trip")
}

// ReplaceBudget godoc
// @Summary Replace the trip budget wholesale
// @Tags Trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.UpdateBudgetRequest true "Budget payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/budget [put]
func (t *TripController) ReplaceBudget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Budget categories must be non-negative numbers")
		return
	}

	trip, err := t.tripService.ReplaceBudget(c.Request.Context(), userID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Budget updated successfully")
}

// ShareTrip godoc
// @Summary Make a trip public and get its share link
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/share [post]
func (t *TripController) ShareTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	tripID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	baseURL := scheme + "://" + c.Request.Host

	share, err := t.tripService.ShareTrip(c.Request.Context(), userID, tripID, baseURL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, share, "Trip shared successfully")
}

// GetSharedTrip godoc
// @Summary View a publicly shared trip
// @Tags Trips
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /shared/{token} [get]
func (t *TripController) GetSharedTrip(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.RespondError(c, http.StatusBadRequest, "Share token is required")
		return
	}

	trip, err := t.tripService.GetSharedTrip(c.Request.Context(), token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Shared trip fetched successfully")
}
