package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pippsza/clickup/internal/cache"
	"github.com/pippsza/clickup/internal/logger"
	"github.com/pippsza/clickup/internal/model"
	"github.com/pippsza/clickup/internal/prefs"
	"github.com/pippsza/clickup/internal/report"
	"github.com/pippsza/clickup/internal/storage"
)

// ReportHandler serves report generation and listing for the dashboard.
type ReportHandler struct {
	service     *report.Service
	store       *storage.Store
	reportCache *cache.Cache[*model.Report]
	prefsStore  *prefs.Store
	base        model.Settings
}

// NewReportHandler creates a report handler. base is the settings value
// resolved from defaults and environment; the saved preference file is
// re-read per request so dashboard settings edits take effect
// immediately.
func NewReportHandler(service *report.Service, store *storage.Store, reportCache *cache.Cache[*model.Report], prefsStore *prefs.Store, base model.Settings) *ReportHandler {
	return &ReportHandler{
		service:     service,
		store:       store,
		reportCache: reportCache,
		prefsStore:  prefsStore,
		base:        base,
	}
}

// Generate handles POST /api/v1/reports.
func (h *ReportHandler) Generate(c *gin.Context) {
	var req model.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid payload",
			Details: err.Error(),
		})
		return
	}

	settings, err := h.prefsStore.Load(h.base)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if req.ReportType == "daily" {
		settings = settings.DailyView()
	}

	period := model.Period{Year: req.Year, Month: req.Month}
	if err := period.Validate(); err != nil {
		h.handleError(c, err)
		return
	}

	key := cacheKey(period, req.ReportType, settings)
	if rep, ok := h.reportCache.Get(key); ok {
		logger.FromGin(c).Debug().Str("key", key).Msg("Report served from cache")
		c.JSON(http.StatusOK, rep)
		return
	}

	rep, err := h.service.Monthly(c.Request.Context(), period, settings)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.reportCache.Set(key, rep)
	c.JSON(http.StatusOK, rep)
}

// List handles GET /api/v1/reports.
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.store.List()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// cacheKey fingerprints period, view and the resolved settings so a
// preference change never serves a stale report.
func cacheKey(p model.Period, reportType string, s model.Settings) string {
	return fmt.Sprintf("report:%04d-%02d:%s:%+v", p.Year, p.Month, reportType, s)
}

func (h *ReportHandler) handleError(c *gin.Context, err error) {
	logger.FromGin(c).Error().Err(err).Msg("Report request failed")

	switch {
	case errors.Is(err, model.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, model.ErrorResponse{
			Error:   "clickup rate limit exceeded",
			Details: "wait a few seconds and try again",
		})
	case errors.Is(err, model.ErrUnauthorized), errors.Is(err, model.ErrMissingToken):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{
			Error:   "clickup token invalid",
			Details: "check the CLICKUP_TOKEN variable",
		})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, model.ErrorResponse{
			Error: "resource not found",
		})
	case errors.Is(err, model.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, model.ErrorResponse{
			Error: "clickup request timed out",
		})
	case errors.Is(err, model.ErrInvalidPeriod),
		errors.Is(err, model.ErrInvalidHourlyRate),
		errors.Is(err, model.ErrInvalidTaxRate),
		errors.Is(err, model.ErrInvalidRounding),
		errors.Is(err, model.ErrInvalidPrecision),
		errors.Is(err, model.ErrUnknownSortOrder),
		errors.Is(err, model.ErrUnknownDisplayMode),
		errors.Is(err, model.ErrInvalidTimezone):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid configuration",
			Details: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal error",
			Details: err.Error(),
		})
	}
}
