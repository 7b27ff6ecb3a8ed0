// Package server wires the gin router for the browser dashboard. The
// dashboard consumes the exact report JSON the CLI writes to disk; no
// aggregation logic lives here.
package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pippsza/clickup/internal/cache"
	"github.com/pippsza/clickup/internal/client"
	"github.com/pippsza/clickup/internal/config"
	"github.com/pippsza/clickup/internal/handler"
	"github.com/pippsza/clickup/internal/middleware"
	"github.com/pippsza/clickup/internal/model"
	"github.com/pippsza/clickup/internal/prefs"
	"github.com/pippsza/clickup/internal/report"
	"github.com/pippsza/clickup/internal/storage"
	"github.com/pippsza/clickup/internal/websocket"
)

// ReportCacheTTL bounds how long a generated report is served without
// re-fetching from ClickUp.
const ReportCacheTTL = 5 * time.Minute

// New builds the dashboard server: router, report pipeline and progress
// hub. The returned hub is already running.
func New(cfg *config.Config) (*gin.Engine, *websocket.Hub, error) {
	store, err := storage.NewStore(cfg.ReportsDir)
	if err != nil {
		return nil, nil, err
	}

	hub := websocket.NewHub()
	go hub.Run()

	clickupClient := client.NewClient(cfg.Token)
	service := report.NewService(clickupClient, cfg.TeamID, store, func(ev report.Event) {
		hub.Broadcast("progress", ev)
	})

	prefsStore := prefs.NewStore(cfg.PrefsFile)
	reportCache := cache.New[*model.Report](ReportCacheTTL)

	reportHandler := handler.NewReportHandler(service, store, reportCache, prefsStore, cfg.Settings)
	settingsHandler := handler.NewSettingsHandler(prefsStore, cfg.Settings)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.Recovery())

	r.GET("/health", handler.Health)
	r.GET("/ws", hub.ServeWS)

	api := r.Group("/api/v1")
	{
		api.POST("/reports", reportHandler.Generate)
		api.GET("/reports", reportHandler.List)
		api.GET("/settings", settingsHandler.Get)
		api.PUT("/settings", settingsHandler.Put)
	}

	// Saved report artifacts and, when configured, the built dashboard.
	r.Static("/reports", cfg.ReportsDir)
	if cfg.DashboardDir != "" {
		r.Static("/app", cfg.DashboardDir)
	}

	return r, hub, nil
}
