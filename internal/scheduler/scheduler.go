// Package scheduler fires the two daily jobs: the 15:00 reminder to every
// admin and the 18:00 summary to the owner. Both run in the bot's configured
// timezone, independent of any chat session.
package scheduler

import (
	"time"

	"github.com/go-co-op/gocron/v2"

	"telegram-report-bot/internal/handlers"
)

const (
	reminderCron = "0 15 * * *"
	summaryCron  = "0 18 * * *"
)

func Start(h *handlers.Handler, loc *time.Location) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}

	if _, err = s.NewJob(
		gocron.CronJob(reminderCron, false),
		gocron.NewTask(h.SendDailyReminders),
	); err != nil {
		return nil, err
	}

	if _, err = s.NewJob(
		gocron.CronJob(summaryCron, false),
		gocron.NewTask(h.SendOwnerSummary),
	); err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}
