package report

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pippsza/clickup/internal/model"
)

// DemoUser is the synthetic user demo reports are attributed to.
var DemoUser = model.User{ID: 1, Username: "demo_user", Email: "demo@example.com"}

var demoTasks = []model.TaskRef{
	{
		ID: "123456", Name: "User API development", Status: "in progress",
		ListName: "Backend Development", FolderName: "Web Project", SpaceName: "Development",
		URL: "https://app.clickup.com/t/123456",
	},
	{
		ID: "123457", Name: "Fix auth flow bugs", Status: "in review",
		ListName: "Bug Fixes", FolderName: "Web Project", SpaceName: "Development",
		URL: "https://app.clickup.com/t/123457",
	},
	{
		ID: "123458", Name: "Write documentation", Status: "complete",
		ListName: "Documentation", FolderName: "Admin Tasks", SpaceName: "Management",
		URL: "https://app.clickup.com/t/123458",
	},
	{
		ID: "123459", Name: "Database optimization", Status: "in progress",
		ListName: "Database Tasks", FolderName: "Infrastructure", SpaceName: "Development",
		URL: "https://app.clickup.com/t/123459",
	},
}

var demoDescriptions = []string{
	"Working on the core feature",
	"Fixing reported issues",
	"Testing and debugging",
	"Code review and refactoring",
	"Planning and analysis",
	"Integrating external services",
	"Writing unit tests",
	"Performance tuning",
}

// DemoEntries produces a deterministic synthetic month of time entries
// for the given period. The same period always yields the same data, so
// demo reports are reproducible. Weekends are skipped for realism.
func DemoEntries(period model.Period, loc *time.Location) []model.TimeEntry {
	rng := rand.New(rand.NewSource(int64(period.Year)*100 + int64(period.Month)))

	firstDay := time.Date(period.Year, time.Month(period.Month), 1, 0, 0, 0, 0, loc)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	var entries []model.TimeEntry
	for taskIdx, task := range demoTasks {
		count := rng.Intn(11) + 5 // 5-15 entries per task
		for i := 0; i < count; i++ {
			day := rng.Intn(daysInMonth) + 1
			date := time.Date(period.Year, time.Month(period.Month), day, 0, 0, 0, 0, loc)
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}

			startHour := rng.Intn(8) + 9 // 09:00-16:00
			duration := int64(rng.Intn(4)+1) * 30 * 60 * 1000
			start := date.Add(time.Duration(startHour) * time.Hour).UnixMilli()

			entries = append(entries, model.TimeEntry{
				ID:          fmt.Sprintf("entry_%d_%d", taskIdx, i),
				Task:        task,
				Description: demoDescriptions[rng.Intn(len(demoDescriptions))],
				DurationMs:  duration,
				StartMs:     start,
				EndMs:       start + duration,
			})
		}
	}
	return entries
}
