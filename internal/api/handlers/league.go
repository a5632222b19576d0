package handlers

import (
	"net/http"
	"strconv"

	"football-data-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MatchHandler handles HTTP requests for matches
type MatchHandler struct {
	matchService service.MatchServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService service.MatchServiceInterface) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// ListMatches handles GET /matches
// @Summary List matches
// @Description Every match with both teams' display fields, newest first
// @Tags matches
// @Produce json
// @Success 200 {array} service.MatchResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	matches, err := h.matchService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch matches", err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// ListLiveMatches handles GET /matches/live
// @Summary List live matches
// @Tags matches
// @Produce json
// @Success 200 {array} service.MatchResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/live [get]
func (h *MatchHandler) ListLiveMatches(c *gin.Context) {
	matches, err := h.matchService.GetLive(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch live matches", err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// ListUpcomingMatches handles GET /matches/upcoming
// @Summary List upcoming matches
// @Description Scheduled matches, soonest first
// @Tags matches
// @Produce json
// @Success 200 {array} service.MatchResponse
// @Failure 500 {object} ErrorResponse
// @Router /matches/upcoming [get]
func (h *MatchHandler) ListUpcomingMatches(c *gin.Context) {
	matches, err := h.matchService.GetUpcoming(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch upcoming matches", err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// StandingHandler handles HTTP requests for the league table
type StandingHandler struct {
	standingService service.StandingServiceInterface
}

// NewStandingHandler creates a new standing handler
func NewStandingHandler(standingService service.StandingServiceInterface) *StandingHandler {
	return &StandingHandler{standingService: standingService}
}

// ListStandings handles GET /standings
// @Summary League table
// @Tags standings
// @Produce json
// @Success 200 {array} service.StandingResponse
// @Failure 500 {object} ErrorResponse
// @Router /standings [get]
func (h *StandingHandler) ListStandings(c *gin.Context) {
	standings, err := h.standingService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch standings", err)
		return
	}
	c.JSON(http.StatusOK, standings)
}

// PlayerHandler handles HTTP requests for players
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// ListTopScorers handles GET /players/top-scorers
// @Summary Top scorers
// @Description Players ordered by goals. Invalid or missing limits fall back to 10; the maximum is 100.
// @Tags players
// @Produce json
// @Param limit query int false "Number of players" default(10)
// @Success 200 {array} service.PlayerResponse
// @Failure 500 {object} ErrorResponse
// @Router /players/top-scorers [get]
func (h *PlayerHandler) ListTopScorers(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultTopScorersLimit)))
	if err != nil {
		limit = service.DefaultTopScorersLimit
	}

	players, err := h.playerService.GetTopScorers(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch top scorers", err)
		return
	}
	c.JSON(http.StatusOK, players)
}
