package scheduler

import (
	"fmt"
	"time"
)

const (
	JobDailyMonitoring    = "dailyMonitoring"
	JobFrequentMonitoring = "frequentMonitoring"
	JobTestMonitoring     = "testMonitoring"
)

// job is one recurring batch pass.
type job struct {
	name        string
	description string
	spec        string // five field cron expression, evaluated in UTC
	devOnly     bool   // armed and run only outside production
}

// JobStatus is the observable state of one job.
type JobStatus struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Schedule    string    `json:"schedule"`
	Scheduled   bool      `json:"scheduled"` // registered with the runner since Start
	Armed       bool      `json:"armed"`     // fires on its schedule
	Running     bool      `json:"running"`   // a tick of this job is executing
	NextRun     time.Time `json:"next_run"`  // zero when not armed
}

func buildJobs(cfg config) []job {
	return []job{
		{
			name:        JobDailyMonitoring,
			description: fmt.Sprintf("Daily wallet monitoring at %02d:00 UTC", cfg.dailyHour),
			spec:        fmt.Sprintf("0 %d * * *", cfg.dailyHour),
		},
		{
			name:        JobFrequentMonitoring,
			description: fmt.Sprintf("Every %d hours wallet monitoring", cfg.frequentIntervalHours),
			spec:        fmt.Sprintf("0 */%d * * *", cfg.frequentIntervalHours),
		},
		{
			name:        JobTestMonitoring,
			description: fmt.Sprintf("Test monitoring every %d minutes (dev only)", cfg.probeIntervalMinutes),
			spec:        fmt.Sprintf("*/%d * * * *", cfg.probeIntervalMinutes),
			devOnly:     true,
		},
	}
}

// armedFor reports whether j fires in the given deployment mode.
func (j job) armedFor(production bool) bool {
	return j.devOnly != production
}
