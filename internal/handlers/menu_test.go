package handlers

import (
	"strings"
	"testing"

	"telegram-report-bot/internal/models"
)

func TestMainKeyboardRoleGate(t *testing.T) {
	owner := mainKeyboard(models.RoleOwner)
	admin := mainKeyboard(models.RoleAdmin)

	if len(owner.InlineKeyboard) != 4 {
		t.Errorf("owner rows = %d, want 4", len(owner.InlineKeyboard))
	}
	if len(admin.InlineKeyboard) != 3 {
		t.Errorf("admin rows = %d, want 3", len(admin.InlineKeyboard))
	}
	for _, row := range admin.InlineKeyboard {
		for _, b := range row {
			if b.Text == btnObjects {
				t.Error("admin menu exposes object management")
			}
		}
	}
}

func TestSelectionKeyboardCheckmarks(t *testing.T) {
	objects := []models.Object{
		{ID: 1, Address: "Первый"},
		{ID: 2, Address: "Второй"},
	}
	kb := selectionKeyboard(objects, func(id int64) bool { return id == 2 })

	// one row per object + select-all/clear + done + back
	if len(kb.InlineKeyboard) != 5 {
		t.Fatalf("rows = %d, want 5", len(kb.InlineKeyboard))
	}
	if strings.HasPrefix(kb.InlineKeyboard[0][0].Text, "✅") {
		t.Error("unselected object has checkmark")
	}
	if !strings.HasPrefix(kb.InlineKeyboard[1][0].Text, "✅") {
		t.Error("selected object missing checkmark")
	}
	if *kb.InlineKeyboard[1][0].CallbackData != "tgl:2" {
		t.Errorf("callback data = %q", *kb.InlineKeyboard[1][0].CallbackData)
	}
}

func TestDeleteKeyboardTokens(t *testing.T) {
	kb := deleteKeyboard([]models.Object{{ID: 5, Address: "Адрес"}})
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d, want 2", len(kb.InlineKeyboard))
	}
	act, ok := ParseAction(*kb.InlineKeyboard[0][0].CallbackData)
	if !ok || act.Kind != ActionDeleteObject || act.ObjectID != 5 {
		t.Errorf("parsed = %+v, ok=%v", act, ok)
	}
}
