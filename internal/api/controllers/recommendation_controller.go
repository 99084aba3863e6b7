package controllers

import (
	"github.com/gin-gonic/gin"

	"roamly/internal/services"
	"roamly/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// GetDestinations godoc
// @Summary Suggest popular cities the caller has not planned yet
// @Tags Recommendations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /recommendations/destinations [get]
func (r *RecommendationController) GetDestinations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cities, err := r.recommendationService.GetDestinations(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Recommendations fetched successfully")
}
