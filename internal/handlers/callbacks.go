package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-report-bot/internal/models"
	"telegram-report-bot/internal/session"
)

// HandleCallback dispatches a decoded button press. Every branch answers the
// callback exactly once; a stale button referencing deleted data gets a
// toast, not a crash.
func (h *Handler) HandleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		h.answer(cq.ID, "")
		return
	}
	chatID := cq.Message.Chat.ID
	messageID := cq.Message.MessageID
	userID := cq.From.ID

	act, ok := ParseAction(cq.Data)
	if !ok {
		h.answer(cq.ID, "")
		return
	}

	switch act.Kind {
	case ActionStartReport:
		h.answer(cq.ID, "")
		h.startReportFlow(chatID, userID)
	case ActionToday:
		h.answer(cq.ID, "")
		h.handleToday(chatID, userID)
	case ActionRange:
		h.answer(cq.ID, "")
		h.handleRange(chatID, userID)
	case ActionObjectsMenu:
		h.answer(cq.ID, "")
		h.handleObjects(chatID, userID)
	case ActionBack:
		h.answer(cq.ID, "")
		h.Sessions.Reset(chatID)
		h.showMainMenu(chatID, userID)

	case ActionToggleObject:
		h.toggleObject(cq, chatID, messageID, act.ObjectID)
	case ActionSelectAll:
		h.selectAllObjects(cq, chatID, messageID)
	case ActionClearSelection:
		h.clearSelection(cq, chatID, messageID)
	case ActionConfirmSelection:
		h.confirmSelection(cq, chatID, messageID)
	case ActionReady:
		h.saveReport(cq, chatID, messageID, userID, act.Ready)

	case ActionAddObject:
		h.promptNewObject(cq, chatID, userID)
	case ActionListObjects:
		h.answer(cq.ID, "")
		if h.ownerGate(chatID, userID) {
			h.listObjectsText(chatID)
		}
	case ActionDeleteMenu:
		h.showDeleteMenu(cq, chatID, userID)
	case ActionDeleteObject:
		h.deleteObject(cq, chatID, messageID, userID, act.ObjectID)

	default:
		h.answer(cq.ID, "")
	}
}

// ownerGate sends the permission-denied reply and returns the chat to the
// main menu for non-owners.
func (h *Handler) ownerGate(chatID, userID int64) bool {
	if h.role(userID) == models.RoleOwner {
		return true
	}
	h.Sessions.Reset(chatID)
	h.send(chatID, msgOwnersOnly)
	h.showMainMenu(chatID, userID)
	return false
}

// refreshSelection re-renders the multi-select keyboard in place after a
// membership change.
func (h *Handler) refreshSelection(chatID int64, messageID int) {
	objects, err := h.DB.ListObjects()
	if err != nil {
		h.fail(chatID, err)
		return
	}
	s := h.Sessions.Get(chatID)
	h.editKeyboard(chatID, messageID, selectionKeyboard(objects, s.Selected))
}

func (h *Handler) toggleObject(cq *tgbotapi.CallbackQuery, chatID int64, messageID int, objectID int64) {
	obj, err := h.DB.GetObject(objectID)
	if err != nil {
		h.answer(cq.ID, "")
		h.fail(chatID, err)
		return
	}
	if obj == nil {
		h.answer(cq.ID, toastObjectGone)
		return
	}

	h.Sessions.Get(chatID).Toggle(objectID)
	h.answer(cq.ID, "")
	h.refreshSelection(chatID, messageID)
}

func (h *Handler) selectAllObjects(cq *tgbotapi.CallbackQuery, chatID int64, messageID int) {
	objects, err := h.DB.ListObjects()
	if err != nil {
		h.answer(cq.ID, "")
		h.fail(chatID, err)
		return
	}
	s := h.Sessions.Get(chatID)
	s.SelectedIDs = nil
	for _, o := range objects {
		s.SelectedIDs = append(s.SelectedIDs, o.ID)
	}
	h.answer(cq.ID, "")
	h.editKeyboard(chatID, messageID, selectionKeyboard(objects, s.Selected))
}

func (h *Handler) clearSelection(cq *tgbotapi.CallbackQuery, chatID int64, messageID int) {
	h.Sessions.Get(chatID).SelectedIDs = nil
	h.answer(cq.ID, "")
	h.refreshSelection(chatID, messageID)
}

// confirmSelection locks the object set and enters the linear form.
func (h *Handler) confirmSelection(cq *tgbotapi.CallbackQuery, chatID int64, messageID int) {
	s := h.Sessions.Get(chatID)
	if len(s.SelectedIDs) == 0 {
		h.answer(cq.ID, toastEmptyPick)
		return
	}
	s.Step = models.StepCleaners
	s.Draft = session.Draft{}
	h.answer(cq.ID, "")
	h.edit(chatID, messageID, promptCleaners)
}

// saveReport is the terminal transition: only reachable with a full draft
// and a non-empty selection, otherwise the user is asked to start over.
func (h *Handler) saveReport(cq *tgbotapi.CallbackQuery, chatID int64, messageID int, userID int64, ready bool) {
	admin, err := h.DB.GetAdminByTelegramID(userID)
	if err != nil {
		h.answer(cq.ID, "")
		h.fail(chatID, err)
		return
	}
	if admin == nil {
		h.answer(cq.ID, msgPleaseRegister)
		h.Sessions.Reset(chatID)
		return
	}

	s := h.Sessions.Get(chatID)
	if s.Step != models.StepReadiness || len(s.SelectedIDs) == 0 {
		h.answer(cq.ID, toastDraftLost)
		h.Sessions.Reset(chatID)
		return
	}

	report := &models.Report{
		AdminID:      admin.ID,
		Date:         h.now(),
		Cleaners:     s.Draft.Cleaners,
		Helpers:      s.Draft.Helpers,
		Payments:     s.Draft.Payments,
		Malfunctions: s.Draft.Malfunctions,
		ReadyForRent: ready,
	}
	if err := h.DB.CreateReport(report, s.SelectedIDs); err != nil {
		h.answer(cq.ID, "")
		h.fail(chatID, err)
		return
	}

	h.Sessions.Reset(chatID)
	h.answer(cq.ID, "")
	h.edit(chatID, messageID, msgReportSaved)
}

func (h *Handler) promptNewObject(cq *tgbotapi.CallbackQuery, chatID, userID int64) {
	h.answer(cq.ID, "")
	if !h.ownerGate(chatID, userID) {
		return
	}
	s := h.Sessions.Get(chatID)
	s.Step = models.StepObjectAddress
	h.send(chatID, promptObjectAddress)
}

func (h *Handler) showDeleteMenu(cq *tgbotapi.CallbackQuery, chatID, userID int64) {
	h.answer(cq.ID, "")
	if !h.ownerGate(chatID, userID) {
		return
	}
	objects, err := h.DB.ListObjects()
	if err != nil {
		h.fail(chatID, err)
		return
	}
	if len(objects) == 0 {
		h.send(chatID, msgNoObjectsYet)
		return
	}
	h.sendKB(chatID, msgDeleteChooseObject, deleteKeyboard(objects))
}

func (h *Handler) deleteObject(cq *tgbotapi.CallbackQuery, chatID int64, messageID int, userID, objectID int64) {
	if h.role(userID) != models.RoleOwner {
		h.answer(cq.ID, msgOwnersOnly)
		h.Sessions.Reset(chatID)
		h.showMainMenu(chatID, userID)
		return
	}

	deleted, err := h.DB.DeleteObject(objectID)
	if err != nil {
		h.answer(cq.ID, "")
		h.fail(chatID, err)
		return
	}
	if !deleted {
		h.answer(cq.ID, toastObjectGone)
		return
	}

	h.answer(cq.ID, msgObjectDeleted)
	objects, err := h.DB.ListObjects()
	if err != nil {
		h.fail(chatID, err)
		return
	}
	if len(objects) == 0 {
		h.edit(chatID, messageID, msgNoObjectsYet)
		return
	}
	h.editKeyboard(chatID, messageID, deleteKeyboard(objects))
}
