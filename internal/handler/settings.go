package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pippsza/clickup/internal/model"
	"github.com/pippsza/clickup/internal/prefs"
)

// SettingsHandler serves the dashboard's settings modal.
type SettingsHandler struct {
	store *prefs.Store
	base  model.Settings
}

// NewSettingsHandler creates a settings handler.
func NewSettingsHandler(store *prefs.Store, base model.Settings) *SettingsHandler {
	return &SettingsHandler{store: store, base: base}
}

// Get handles GET /api/v1/settings: the fully resolved settings value.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.store.Load(h.base)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "load settings",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Put handles PUT /api/v1/settings: the dashboard sends the complete
// settings object back; it is validated and saved as the new preference
// file.
func (h *SettingsHandler) Put(c *gin.Context) {
	var settings model.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid payload",
			Details: err.Error(),
		})
		return
	}

	if err := settings.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid settings",
			Details: err.Error(),
		})
		return
	}

	if err := h.store.Save(settings); err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "save settings",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, settings)
}
