package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dh467/coindesk/internal/core/ports/services"
	"github.com/dh467/coindesk/internal/dto"
	"github.com/dh467/coindesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// coindeskHandler handles HTTP requests for the aggregation pipeline.
type coindeskHandler struct {
	coindeskService portssvc.CoindeskSvcFacade
}

// newCoindeskHandler creates a new coindeskHandler.
func newCoindeskHandler(cs portssvc.CoindeskSvcFacade) *coindeskHandler {
	return &coindeskHandler{
		coindeskService: cs,
	}
}

// registerCoindeskRoutes registers the feed aggregation routes.
func registerCoindeskRoutes(rg *gin.RouterGroup, coindeskService portssvc.CoindeskSvcFacade) {
	h := newCoindeskHandler(coindeskService)

	rg.GET("/coingecko/raw", h.getRawFeed)
	rg.GET("/currencies", h.getEnrichedCurrencies)
}

// getRawFeed godoc
// @Summary Get the raw market feed
// @Description Returns the upstream CoinGecko response for all tracked currencies verbatim
// @Tags coindesk
// @Produce  json
// @Success 200 {string} string "Raw feed payload"
// @Failure 404 {object} ErrorResponse "No tracked currencies or empty feed"
// @Failure 502 {object} ErrorResponse "Feed unreachable or malformed"
// @Router /coindesk/coingecko/raw [get]
func (h *coindeskHandler) getRawFeed(c *gin.Context) {
	raw, err := h.coindeskService.GetRawFeed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// getEnrichedCurrencies godoc
// @Summary List enriched currencies
// @Description Returns feed prices joined with local display names, sorted by currency id
// @Tags coindesk
// @Produce  json
// @Success 200 {array} dto.EnrichedCurrencyResponse
// @Failure 404 {object} ErrorResponse "No tracked currencies or empty feed"
// @Failure 502 {object} ErrorResponse "Feed unreachable or malformed"
// @Router /coindesk/currencies [get]
func (h *coindeskHandler) getEnrichedCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	enriched, err := h.coindeskService.GetEnrichedCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Enriched currencies listed", slog.Int("count", len(enriched)))
	c.JSON(http.StatusOK, dto.ToListEnrichedCurrencyResponse(enriched))
}
