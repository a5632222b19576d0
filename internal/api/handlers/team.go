package handlers

import (
	"errors"
	"net/http"

	apperrors "football-data-backend/internal/errors"
	"football-data-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for teams
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description Get every team ordered by name
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse
// @Failure 500 {object} ErrorResponse
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch teams", err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeamBySlug handles GET /teams/:slug
// @Summary Get team by slug
// @Tags teams
// @Produce json
// @Param slug path string true "Team slug" example(america)
// @Success 200 {object} service.TeamResponse
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse
// @Router /teams/{slug} [get]
func (h *TeamHandler) GetTeamBySlug(c *gin.Context) {
	team, err := h.teamService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Team not found"})
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch team", err)
		return
	}

	c.JSON(http.StatusOK, team)
}
