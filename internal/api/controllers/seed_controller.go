package controllers

import (
	"github.com/gin-gonic/gin"

	"roamly/internal/services"
	"roamly/pkg/utils"
)

type SeedController struct {
	seedService services.SeedServiceInterface
}

func NewSeedController(seedService services.SeedServiceInterface) *SeedController {
	return &SeedController{
		seedService: seedService,
	}
}

// Seed godoc
// @Summary Reset reference data to the built-in fixtures (non-production only)
// @Tags Seed
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /seed [post]
func (s *SeedController) Seed(c *gin.Context) {
	if err := s.seedService.Seed(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Seed data loaded successfully")
}
