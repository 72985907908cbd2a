package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"widgets-api/internal/models"
	"widgets-api/internal/services"
	"widgets-api/pkg/lambda"
)

// NowPlayingHandler reports current Spotify playback
type NowPlayingHandler struct {
	nowPlayingService services.NowPlayingService
}

// NewNowPlayingHandler creates a new now-playing handler
func NewNowPlayingHandler(nowPlayingService services.NowPlayingService) *NowPlayingHandler {
	return &NowPlayingHandler{
		nowPlayingService: nowPlayingService,
	}
}

// Handle serves one now-playing request
func (h *NowPlayingHandler) Handle(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	result, err := h.nowPlayingService.GetNowPlaying(ctx)
	if err != nil {
		return errorToResponse("now-playing", err), nil
	}

	if result.Idle {
		return jsonResponse(http.StatusOK, models.NotPlayingPayload{Playing: false}), nil
	}

	return &lambda.Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       result.Body,
	}, nil
}

// @Summary Get current playback
// @Description Spotify currently-playing object, or {"playing": false} when nothing is playing
// @Tags now-playing
// @Produce json
// @Success 200 {object} models.CurrentlyPlaying
// @Failure 500 {object} ErrorResponse
// @Router /now-playing [get]
func (h *NowPlayingHandler) GetNowPlaying(c *gin.Context) {
	resp, _ := h.Handle(c.Request.Context(), requestFromGin(c))
	writeResponse(c, resp)
}
