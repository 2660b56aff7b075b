package handlers

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-report-bot/internal/dates"
	"telegram-report-bot/internal/models"
)

// prompts maps a form step to the question asked for it.
var prompts = map[models.Step]string{
	models.StepCleaners:     promptCleaners,
	models.StepHelpers:      promptHelpers,
	models.StepPayments:     promptPayments,
	models.StepMalfunctions: promptMalfunctions,
}

// HandleText routes a free-text message by the session's current step. Text
// arriving with no step pending is answered with a hint, never an error.
func (h *Handler) HandleText(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	s := h.Sessions.Get(chatID)
	switch s.Step {
	case models.StepCleaners, models.StepHelpers, models.StepPayments, models.StepMalfunctions:
		h.collectField(chatID, userID, text)
	case models.StepReadiness:
		h.send(chatID, msgUseButtons)
	case models.StepObjectAddress:
		h.collectObjectAddress(chatID, userID, text)
	case models.StepRangeStart:
		h.collectRangeStart(chatID, text)
	case models.StepRangeEnd:
		h.collectRangeEnd(chatID, userID, text)
	default:
		h.send(chatID, msgUseReport)
	}
}

// collectField copies the message verbatim into the draft and advances the
// fixed sequence. After malfunctions the form switches to the readiness
// buttons.
func (h *Handler) collectField(chatID, userID int64, text string) {
	if h.requireAdmin(chatID, userID) == nil {
		return
	}

	s := h.Sessions.Get(chatID)
	s.Draft.Set(s.Step, text)

	if s.Step == models.StepMalfunctions {
		s.Step = models.StepReadiness
		h.sendKB(chatID, msgReadyQuestion, readinessKeyboard())
		return
	}
	s.Step = s.Step.Next()
	h.send(chatID, prompts[s.Step])
}

func (h *Handler) collectObjectAddress(chatID, userID int64, text string) {
	if h.requireAdmin(chatID, userID) == nil {
		return
	}
	if h.role(userID) != models.RoleOwner {
		h.Sessions.Reset(chatID)
		h.send(chatID, msgOwnersOnly)
		return
	}

	// address doubles as name and description, like the object seed data
	o := &models.Object{Address: text, Name: text, Description: text}
	if err := h.DB.CreateObject(o); err != nil {
		h.fail(chatID, err)
		return
	}

	s := h.Sessions.Get(chatID)
	s.Step = models.StepNone
	h.send(chatID, fmt.Sprintf(msgObjectAdded, text))
	h.sendKB(chatID, msgObjectsMenu, objectsMenuKeyboard())
}

func (h *Handler) collectRangeStart(chatID int64, text string) {
	start, err := dates.ParseDay(text, h.Loc)
	if err != nil {
		h.send(chatID, msgBadDate)
		return
	}
	s := h.Sessions.Get(chatID)
	s.RangeStart = start
	s.HasRangeStart = true
	s.Step = models.StepRangeEnd
	h.send(chatID, promptRangeEnd)
}

// collectRangeEnd validates end >= start, keeping the collected start when
// re-prompting, then renders and fully resets the session.
func (h *Handler) collectRangeEnd(chatID, userID int64, text string) {
	admin := h.requireAdmin(chatID, userID)
	if admin == nil {
		return
	}

	end, err := dates.ParseDay(text, h.Loc)
	if err != nil {
		h.send(chatID, msgBadDate)
		return
	}

	s := h.Sessions.Get(chatID)
	if end.Before(s.RangeStart) {
		h.send(chatID, msgEndBeforeStart)
		return
	}

	from, to := dates.RangeBounds(s.RangeStart, end)
	label := s.RangeStart.Format(dates.DayFormat) + " — " + end.Format(dates.DayFormat)
	h.Sessions.Reset(chatID)
	h.renderReports(chatID, userID, admin, from, to, label, msgNoReportsRange)
}
