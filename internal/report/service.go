package report

import (
	"context"
	"fmt"

	"github.com/pippsza/clickup/internal/client"
	"github.com/pippsza/clickup/internal/logger"
	"github.com/pippsza/clickup/internal/model"
	"github.com/pippsza/clickup/internal/storage"
)

// Fetcher is the slice of the ClickUp client the service needs.
type Fetcher interface {
	GetUser(ctx context.Context) (model.User, error)
	GetTeams(ctx context.Context) ([]model.Team, error)
	GetTimeEntries(ctx context.Context, teamID string, assignee int, startMs, endMs int64) (client.EntriesResult, error)
}

// Event is a progress notification emitted while a report is produced.
// The websocket hub forwards these to dashboard clients.
type Event struct {
	Stage    string  `json:"stage"`
	Message  string  `json:"message"`
	Progress float64 `json:"progress"` // 0-100
}

// Notifier receives progress events. Implementations must not block.
type Notifier func(Event)

// Service orchestrates report generation: fetch entries, run the shared
// aggregation pipeline, persist the JSON artifact. The CLI and the web
// server both call this; neither has aggregation logic of its own.
type Service struct {
	fetcher Fetcher
	teamID  string
	store   *storage.Store
	notify  Notifier
}

// NewService creates a report service. teamID may be empty: the first
// team visible to the token is used then. notify may be nil.
func NewService(fetcher Fetcher, teamID string, store *storage.Store, notify Notifier) *Service {
	if notify == nil {
		notify = func(Event) {}
	}
	return &Service{fetcher: fetcher, teamID: teamID, store: store, notify: notify}
}

// Monthly produces, persists and returns the report for one calendar
// month under the given settings.
func (s *Service) Monthly(ctx context.Context, period model.Period, settings model.Settings) (*model.Report, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	log := logger.Get(ctx)
	s.notify(Event{Stage: "fetch", Message: "resolving user", Progress: 5})

	user, err := s.fetcher.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	log.Info().Str("username", user.Username).Str("email", user.Email).Msg("Generating report")

	teamID := s.teamID
	if teamID == "" {
		teams, err := s.fetcher.GetTeams(ctx)
		if err != nil {
			return nil, err
		}
		if len(teams) == 0 {
			return nil, model.ErrNoTeams
		}
		teamID = teams[0].ID
		log.Info().Str("team_id", teamID).Str("team", teams[0].Name).Msg("Using first available team")
	}

	startMs, endMs := period.Bounds(settings.Location())
	s.notify(Event{Stage: "fetch", Message: "fetching time entries", Progress: 25})

	res, err := s.fetcher.GetTimeEntries(ctx, teamID, user.ID, startMs, endMs)
	if err != nil {
		return nil, err
	}
	log.Info().Int("entries", len(res.Entries)).Int("dropped", res.Dropped).Msg("Entries fetched")

	s.notify(Event{Stage: "aggregate", Message: "aggregating", Progress: 70})
	rep, err := Generate(res.Entries, period, user, settings)
	if err != nil {
		return nil, err
	}
	rep.SkippedEntries += res.Dropped

	if s.store != nil {
		path, err := s.store.SaveJSON(rep)
		if err != nil {
			return nil, fmt.Errorf("save report: %w", err)
		}
		log.Info().Str("path", path).Msg("Report saved")
	}

	s.notify(Event{Stage: "done", Message: "report ready", Progress: 100})
	return rep, nil
}
