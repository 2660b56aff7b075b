package handlers

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"telegram-report-bot/internal/dates"
	"telegram-report-bot/internal/format"
)

// SendDailyReminders pings every registered admin. One failed delivery must
// not abort the loop.
func (h *Handler) SendDailyReminders() {
	admins, err := h.DB.ListAdmins()
	if err != nil {
		log.Error().Err(err).Msg("reminder: list admins")
		return
	}
	for _, a := range admins {
		h.send(a.TelegramID, msgReminder)
	}
	log.Info().Int("admins", len(admins)).Msg("daily reminders sent")
}

// SendOwnerSummary delivers today's aggregated reports to the owner.
func (h *Handler) SendOwnerSummary() {
	now := h.now()
	label := now.Format(dates.DayFormat)

	reports, err := h.DB.ListReportsBetween(dates.DayStart(now), dates.NextDay(now), 0)
	if err != nil {
		log.Error().Err(err).Msg("summary: list reports")
		return
	}
	if len(reports) == 0 {
		h.send(h.OwnerID, fmt.Sprintf(msgNoReportsFor, label))
		return
	}
	h.sendChunks(h.OwnerID, format.Render(reports, true, label))
}
