package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"widgets-api/internal/services"
	"widgets-api/pkg/lambda"
)

// StandingsHandler serves the league table
type StandingsHandler struct {
	standingsService services.StandingsService
}

// NewStandingsHandler creates a new standings handler
func NewStandingsHandler(standingsService services.StandingsService) *StandingsHandler {
	return &StandingsHandler{
		standingsService: standingsService,
	}
}

// Handle serves one standings request. Failures are expressed in the
// response, so the returned error is always nil.
func (h *StandingsHandler) Handle(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	payload, err := h.standingsService.GetStandings(ctx, req.Query("top"))
	if err != nil {
		return errorToResponse("standings", err), nil
	}

	return jsonResponse(http.StatusOK, payload), nil
}

// @Summary Get league standings
// @Description Top N rows of the current league table, served from a 15 minute cache when fresh
// @Tags standings
// @Produce json
// @Param top query int false "Number of rows (1-20)" default(5)
// @Success 200 {object} models.StandingsPayload
// @Failure 500 {object} ErrorResponse
// @Router /standings [get]
func (h *StandingsHandler) GetStandings(c *gin.Context) {
	resp, _ := h.Handle(c.Request.Context(), requestFromGin(c))
	writeResponse(c, resp)
}
