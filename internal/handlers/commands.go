package handlers

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-report-bot/internal/dates"
	"telegram-report-bot/internal/format"
	"telegram-report-bot/internal/models"
	"telegram-report-bot/internal/session"
)

func (h *Handler) HandleCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	switch msg.Command() {
	case "start":
		h.handleStart(msg)
	case "help":
		h.send(chatID, msgHelp)
	case "report":
		// the same-day guard applies on the command path only
		h.handleReportCommand(chatID, userID)
	case "today":
		h.handleToday(chatID, userID)
	case "period":
		h.handleRange(chatID, userID)
	case "objects":
		h.handleObjects(chatID, userID)
	default:
		h.send(chatID, msgHelp)
	}
}

// handleStart registers unseen identities and resets the session, so /start
// always lands the chat on a clean main menu.
func (h *Handler) handleStart(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	from := msg.From

	admin, err := h.DB.GetAdminByTelegramID(from.ID)
	if err != nil {
		h.fail(chatID, err)
		return
	}
	if admin == nil {
		a := &models.Admin{
			TelegramID: from.ID,
			Name:       from.FirstName,
			Username:   from.UserName,
		}
		if err := h.DB.CreateAdmin(a); err != nil {
			h.fail(chatID, err)
			return
		}
		h.send(chatID, msgWelcomeNew)
	} else {
		h.send(chatID, fmt.Sprintf(msgWelcomeBack, from.FirstName))
	}

	h.Sessions.Reset(chatID)
	h.send(chatID, msgHelp)
	h.showMainMenu(chatID, from.ID)
}

func (h *Handler) handleReportCommand(chatID, userID int64) {
	admin := h.requireAdmin(chatID, userID)
	if admin == nil {
		return
	}

	now := h.now()
	exists, err := h.DB.HasReportBetween(admin.ID, dates.DayStart(now), dates.NextDay(now))
	if err != nil {
		h.fail(chatID, err)
		return
	}
	if exists {
		h.send(chatID, msgAlreadyReported)
		return
	}
	h.startReportFlow(chatID, userID)
}

// startReportFlow opens the multi-select object keyboard.
func (h *Handler) startReportFlow(chatID, userID int64) {
	if h.requireAdmin(chatID, userID) == nil {
		return
	}

	objects, err := h.DB.ListObjects()
	if err != nil {
		h.fail(chatID, err)
		return
	}
	if len(objects) == 0 {
		h.send(chatID, msgNoObjects)
		return
	}

	s := h.Sessions.Get(chatID)
	s.Menu = models.MenuReport
	s.Step = models.StepNone
	s.Draft = session.Draft{}
	s.SelectedIDs = nil

	h.sendKB(chatID, msgChooseObjects, selectionKeyboard(objects, s.Selected))
}

// handleToday renders today's reports: all of them for the owner, only the
// caller's own for a plain admin.
func (h *Handler) handleToday(chatID, userID int64) {
	admin := h.requireAdmin(chatID, userID)
	if admin == nil {
		return
	}

	now := h.now()
	h.renderReports(chatID, userID, admin,
		dates.DayStart(now), dates.NextDay(now),
		now.Format(dates.DayFormat), msgNoReportsToday)
}

func (h *Handler) handleRange(chatID, userID int64) {
	if h.requireAdmin(chatID, userID) == nil {
		return
	}

	s := h.Sessions.Get(chatID)
	s.Menu = models.MenuReports
	s.Step = models.StepRangeStart
	s.HasRangeStart = false
	h.send(chatID, promptRangeStart)
}

func (h *Handler) handleObjects(chatID, userID int64) {
	if h.requireAdmin(chatID, userID) == nil {
		return
	}
	if h.role(userID) != models.RoleOwner {
		h.Sessions.Reset(chatID)
		h.send(chatID, msgOwnersOnly)
		h.showMainMenu(chatID, userID)
		return
	}

	s := h.Sessions.Get(chatID)
	s.Menu = models.MenuObjects
	h.sendKB(chatID, msgObjectsMenu, objectsMenuKeyboard())
}

// renderReports is the shared fetch-format-send tail of the view flows.
func (h *Handler) renderReports(chatID, userID int64, admin *models.Admin,
	from, to time.Time, label, emptyMsg string) {

	filterAdmin := admin.ID
	showAdmin := false
	if h.role(userID) == models.RoleOwner {
		filterAdmin = 0
		showAdmin = true
	}

	reports, err := h.DB.ListReportsBetween(from, to, filterAdmin)
	if err != nil {
		h.fail(chatID, err)
		return
	}
	if len(reports) == 0 {
		h.send(chatID, emptyMsg)
		return
	}
	h.sendChunks(chatID, format.Render(reports, showAdmin, label))
}

func (h *Handler) listObjectsText(chatID int64) {
	objects, err := h.DB.ListObjects()
	if err != nil {
		h.fail(chatID, err)
		return
	}
	if len(objects) == 0 {
		h.send(chatID, msgNoObjectsYet)
		return
	}
	var b strings.Builder
	b.WriteString("Список объектов:\n")
	for i, o := range objects {
		fmt.Fprintf(&b, "%d. %s\n", i+1, o.Address)
	}
	h.send(chatID, b.String())
}
