package client

import (
	"strconv"

	"github.com/pippsza/clickup/internal/model"
)

// The time-entries endpoint serializes numeric fields as strings. Wire
// types keep the raw shape; conversion to the core model happens in one
// place so malformed values are dropped and counted at the boundary
// instead of leaking a zero into the aggregates.

type wireUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type wireEntry struct {
	ID          string    `json:"id"`
	Task        *wireTask `json:"task"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	TaskURL     string    `json:"task_url"`
}

type wireTask struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status struct {
		Status string `json:"status"`
	} `json:"status"`
	List struct {
		Name string `json:"name"`
	} `json:"list"`
	Folder struct {
		Name string `json:"name"`
	} `json:"folder"`
	Space struct {
		Name string `json:"name"`
	} `json:"space"`
	URL string `json:"url"`
}

// toModel converts a wire entry. ok is false when duration or start are
// missing or unparseable; negative durations are kept and left for the
// aggregation engine's skip-and-count policy.
func (w wireEntry) toModel() (model.TimeEntry, bool) {
	duration, err := strconv.ParseInt(w.Duration, 10, 64)
	if err != nil {
		return model.TimeEntry{}, false
	}
	start, err := strconv.ParseInt(w.Start, 10, 64)
	if err != nil {
		return model.TimeEntry{}, false
	}

	var end int64
	if w.End != "" {
		// An absent or broken end only means "in progress"; duration
		// stays authoritative either way.
		end, _ = strconv.ParseInt(w.End, 10, 64)
	}

	entry := model.TimeEntry{
		ID:          w.ID,
		Description: w.Description,
		DurationMs:  duration,
		StartMs:     start,
		EndMs:       end,
	}
	if w.Task != nil {
		entry.Task = model.TaskRef{
			ID:         w.Task.ID,
			Name:       w.Task.Name,
			Status:     w.Task.Status.Status,
			ListName:   w.Task.List.Name,
			FolderName: w.Task.Folder.Name,
			SpaceName:  w.Task.Space.Name,
			URL:        w.Task.URL,
		}
		if entry.Task.URL == "" {
			entry.Task.URL = w.TaskURL
		}
	}
	return entry, true
}
