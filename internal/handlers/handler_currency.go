package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dh467/coindesk/internal/core/ports/services"
	"github.com/dh467/coindesk/internal/dto"
	"github.com/dh467/coindesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests for the currency mapping lifecycle.
type currencyHandler struct {
	mappingService portssvc.CurrencyMappingSvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(ms portssvc.CurrencyMappingSvcFacade) *currencyHandler {
	return &currencyHandler{
		mappingService: ms,
	}
}

// registerCurrencyRoutes registers the mapping CRUD routes.
func registerCurrencyRoutes(rg *gin.RouterGroup, mappingService portssvc.CurrencyMappingSvcFacade) {
	h := newCurrencyHandler(mappingService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("/:id", h.getCurrency)
		currencies.PUT("/:id", h.updateCurrency)
		currencies.DELETE("/:id", h.deleteCurrency)
	}
}

// createCurrency godoc
// @Summary Track a new currency
// @Description Adds a currency id to display name mapping
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency mapping details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse "Blank or undefined field"
// @Failure 409 {object} ErrorResponse "Currency id already exists"
// @Failure 500 {object} ErrorResponse
// @Router /coindesk/currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := bindStrictJSON(c, &req); err != nil {
		logger.Warn("Failed to bind JSON for createCurrency", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Received request to create currency", slog.String("currency_id", req.ID))

	created, err := h.mappingService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(created))
}

// getCurrency godoc
// @Summary Get a currency mapping by id
// @Description Retrieves the stored mapping for a feed currency id
// @Tags currencies
// @Produce  json
// @Param   id path string true "Currency id (e.g. bitcoin)"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse
// @Router /coindesk/currencies/{id} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	id := c.Param("id")

	m, err := h.mappingService.GetCurrency(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(m))
}

// updateCurrency godoc
// @Summary Rename a tracked currency
// @Description Changes the display name of an existing mapping
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   id path string true "Currency id (e.g. bitcoin)"
// @Param   currency body dto.UpdateCurrencyRequest true "New display name"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse "Blank display name"
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse
// @Router /coindesk/currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")

	var req dto.UpdateCurrencyRequest
	if err := bindStrictJSON(c, &req); err != nil {
		logger.Warn("Failed to bind JSON for updateCurrency", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	updated, err := h.mappingService.UpdateCurrency(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// deleteCurrency godoc
// @Summary Stop tracking a currency
// @Description Removes the mapping for a feed currency id
// @Tags currencies
// @Param   id path string true "Currency id (e.g. bitcoin)"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Currency not found"
// @Failure 500 {object} ErrorResponse
// @Router /coindesk/currencies/{id} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	id := c.Param("id")

	if err := h.mappingService.DeleteCurrency(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
