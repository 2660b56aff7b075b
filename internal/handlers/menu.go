package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-report-bot/internal/models"
)

// Keyboard construction lives here as pure functions of role and data, so
// every screen has exactly one source of truth.

func btn(label string, a Action) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(label, a.Token())
}

func backRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(btn(btnBack, Action{Kind: ActionBack}))
}

// mainKeyboard is the role-specific main menu. Object management is
// owner-only and hidden from plain admins.
func mainKeyboard(role models.Role) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(btn(btnReport, Action{Kind: ActionStartReport})),
		tgbotapi.NewInlineKeyboardRow(btn(btnToday, Action{Kind: ActionToday})),
		tgbotapi.NewInlineKeyboardRow(btn(btnRange, Action{Kind: ActionRange})),
	}
	if role == models.RoleOwner {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn(btnObjects, Action{Kind: ActionObjectsMenu})))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func objectsMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(btn(btnAdd, Action{Kind: ActionAddObject})),
		tgbotapi.NewInlineKeyboardRow(btn(btnList, Action{Kind: ActionListObjects})),
		tgbotapi.NewInlineKeyboardRow(btn(btnDelete, Action{Kind: ActionDeleteMenu})),
		backRow(),
	)
}

// selectionKeyboard renders the multi-select object list. Selected entries
// get a leading checkmark; toggling re-renders the same message.
func selectionKeyboard(objects []models.Object, selected func(int64) bool) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(objects)+3)
	for _, o := range objects {
		label := o.Label()
		if selected(o.ID) {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			btn(label, Action{Kind: ActionToggleObject, ObjectID: o.ID})))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			btn(btnSelectAll, Action{Kind: ActionSelectAll}),
			btn(btnClearSel, Action{Kind: ActionClearSelection}),
		),
		tgbotapi.NewInlineKeyboardRow(btn(btnDone, Action{Kind: ActionConfirmSelection})),
		backRow(),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func readinessKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			btn(btnYes, Action{Kind: ActionReady, Ready: true}),
			btn(btnNo, Action{Kind: ActionReady, Ready: false}),
		),
	)
}

func deleteKeyboard(objects []models.Object) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(objects)+1)
	for _, o := range objects {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			btn(o.Label(), Action{Kind: ActionDeleteObject, ObjectID: o.ID})))
	}
	rows = append(rows, backRow())
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
