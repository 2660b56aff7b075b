// Package handlers is the conversation state machine: every inbound update
// is interpreted against the chat's session and role, producing session
// mutations, record-store operations and outbound messages.
package handlers

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"telegram-report-bot/internal/models"
	"telegram-report-bot/internal/session"
	"telegram-report-bot/internal/storage"
)

// Sender is the slice of the bot API the handlers use. *tgbotapi.BotAPI
// satisfies it; tests substitute a capture fake.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	Bot      Sender
	DB       *storage.DB
	Sessions *session.Store
	OwnerID  int64 // telegram id of the distinguished owner admin
	Loc      *time.Location

	// SendDelay spaces out multi-chunk sends to stay under the outbound
	// rate limit. Zero in tests.
	SendDelay time.Duration
}

func New(bot Sender, db *storage.DB, ownerID int64, loc *time.Location) *Handler {
	return &Handler{
		Bot:       bot,
		DB:        db,
		Sessions:  session.NewStore(),
		OwnerID:   ownerID,
		Loc:       loc,
		SendDelay: 300 * time.Millisecond,
	}
}

// HandleUpdate routes one inbound event. A failing conversation must never
// take the process down or leave the chat stuck, so panics degrade to the
// generic error reply plus a session reset.
func (h *Handler) HandleUpdate(upd tgbotapi.Update) {
	var chatID int64
	switch {
	case upd.Message != nil:
		chatID = upd.Message.Chat.ID
	case upd.CallbackQuery != nil && upd.CallbackQuery.Message != nil:
		chatID = upd.CallbackQuery.Message.Chat.ID
	default:
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Int64("chat_id", chatID).Msg("handler panic")
			h.Sessions.Reset(chatID)
			h.send(chatID, msgGenericError)
		}
	}()

	switch {
	case upd.Message != nil && upd.Message.IsCommand():
		h.HandleCommand(upd.Message)
	case upd.Message != nil:
		h.HandleText(upd.Message)
	case upd.CallbackQuery != nil:
		h.HandleCallback(upd.CallbackQuery)
	}
}

func (h *Handler) role(userID int64) models.Role {
	if userID == h.OwnerID {
		return models.RoleOwner
	}
	return models.RoleAdmin
}

func (h *Handler) now() time.Time {
	return time.Now().In(h.Loc)
}

// requireAdmin resolves the inbound identity. An unregistered identity gets
// the register prompt and a defensive session clear so no half-collected
// form is left dangling.
func (h *Handler) requireAdmin(chatID, userID int64) *models.Admin {
	admin, err := h.DB.GetAdminByTelegramID(userID)
	if err != nil {
		h.fail(chatID, err)
		return nil
	}
	if admin == nil {
		h.Sessions.Reset(chatID)
		h.send(chatID, msgPleaseRegister)
		return nil
	}
	return admin
}

// fail is the handler-boundary error policy: log, tell the user to retry,
// reset the session so the chat is not stuck mid-form.
func (h *Handler) fail(chatID int64, err error) {
	log.Error().Err(err).Int64("chat_id", chatID).Msg("handler error")
	h.Sessions.Reset(chatID)
	h.send(chatID, msgGenericError)
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Warn().Err(err).Int64("chat_id", chatID).Msg("send failed")
	}
}

func (h *Handler) sendKB(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.Bot.Send(msg); err != nil {
		log.Warn().Err(err).Int64("chat_id", chatID).Msg("send failed")
	}
}

// sendChunks delivers formatter output, pacing the sends.
func (h *Handler) sendChunks(chatID int64, chunks []string) {
	for i, c := range chunks {
		if i > 0 && h.SendDelay > 0 {
			time.Sleep(h.SendDelay)
		}
		h.send(chatID, c)
	}
}

func (h *Handler) edit(chatID int64, messageID int, text string) {
	if _, err := h.Bot.Request(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		log.Warn().Err(err).Int64("chat_id", chatID).Msg("edit failed")
	}
}

func (h *Handler) editKeyboard(chatID int64, messageID int, kb tgbotapi.InlineKeyboardMarkup) {
	if _, err := h.Bot.Request(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, kb)); err != nil {
		log.Warn().Err(err).Int64("chat_id", chatID).Msg("edit failed")
	}
}

// answer dismisses the callback pending indicator, optionally with a toast.
func (h *Handler) answer(callbackID, toast string) {
	if _, err := h.Bot.Request(tgbotapi.NewCallback(callbackID, toast)); err != nil {
		log.Warn().Err(err).Msg("callback answer failed")
	}
}

func (h *Handler) showMainMenu(chatID, userID int64) {
	s := h.Sessions.Get(chatID)
	s.Menu = models.MenuMain
	h.sendKB(chatID, msgMainMenu, mainKeyboard(h.role(userID)))
}
