package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamly/internal/models/request_models"
	"roamly/internal/services"
	"roamly/pkg/utils"
)

type CityController struct {
	cityService services.CityServiceInterface
}

func NewCityController(cityService services.CityServiceInterface) *CityController {
	return &CityController{
		cityService: cityService,
	}
}

// ListCities godoc
// @Summary List cities, filtered and sorted by popularity
// @Tags Cities
// @Produce json
// @Param country query string false "Exact country match"
// @Param search query string false "Case-insensitive name/country substring"
// @Param minCost query int false "Minimum cost index (inclusive)"
// @Param maxCost query int false "Maximum cost index (inclusive)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /cities [get]
func (cc *CityController) ListCities(c *gin.Context) {
	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	// Absent parameters contribute no predicate at all.
	filter := request_models.CityFilter{
		Country: c.Query("country"),
		Search:  c.Query("search"),
	}
	if raw := c.Query("minCost"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "minCost must be an integer")
			return
		}
		filter.MinCost = &v
	}
	if raw := c.Query("maxCost"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "maxCost must be an integer")
			return
		}
		filter.MaxCost = &v
	}

	cities, err := cc.cityService.ListCities(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCity godoc
// @Summary Get one city
// @Tags Cities
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} utils.APIResponse
// @Router /cities/{id} [get]
func (cc *CityController) GetCity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	city, err := cc.cityService.GetCity(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City fetched successfully")
}

// CreateCity godoc
// @Summary Create a city (admin)
// @Tags Cities
// @Accept json
// @Produce json
// @Param request body request_models.CreateCityRequest true "City payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cities [post]
func (cc *CityController) CreateCity(c *gin.Context) {
	var req request_models.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, country and a cost index of 1-5 are required")
		return
	}

	city, err := cc.cityService.CreateCity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, city, "City created successfully")
}

// UpdateCity godoc
// @Summary Update a city (admin)
// @Tags Cities
// @Accept json
// @Produce json
// @Param id path string true "City ID"
// @Param request body request_models.UpdateCityRequest true "City payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cities/{id} [put]
func (cc *CityController) UpdateCity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	city, err := cc.cityService.UpdateCity(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City updated successfully")
}

// DeleteCity godoc
// @Summary Delete a city (admin)
// @Tags Cities
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /cities/{id} [delete]
func (cc *CityController) DeleteCity(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.cityService.DeleteCity(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "City deleted successfully")
}
