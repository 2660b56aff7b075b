package session

import (
	"testing"
	"time"

	"telegram-report-bot/internal/models"
)

func TestGetUnseenKeyReturnsDefaults(t *testing.T) {
	st := NewStore()
	s := st.Get(42)

	if s.Step != models.StepNone {
		t.Errorf("Step = %v, want StepNone", s.Step)
	}
	if s.Menu != models.MenuMain {
		t.Errorf("Menu = %v, want MenuMain", s.Menu)
	}
	if s.Draft != (Draft{}) {
		t.Errorf("Draft = %+v, want empty", s.Draft)
	}
	if len(s.SelectedIDs) != 0 {
		t.Errorf("SelectedIDs = %v, want empty", s.SelectedIDs)
	}
	if s.HasRangeStart {
		t.Error("HasRangeStart = true, want false")
	}
}

func TestGetReturnsSameSession(t *testing.T) {
	st := NewStore()
	s := st.Get(1)
	s.Step = models.StepHelpers

	if got := st.Get(1); got.Step != models.StepHelpers {
		t.Errorf("Step = %v, want StepHelpers", got.Step)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	st := NewStore()
	s := st.Get(1)
	s.Step = models.StepPayments
	s.Menu = models.MenuObjects
	s.Draft.Cleaners = "Анна"
	s.SelectedIDs = []int64{3, 1}
	s.RangeStart = time.Now()
	s.HasRangeStart = true

	st.Reset(1)

	got := st.Get(1)
	if got.Step != models.StepNone || got.Menu != models.MenuMain {
		t.Errorf("after reset: step %v menu %v", got.Step, got.Menu)
	}
	if got.Draft != (Draft{}) || len(got.SelectedIDs) != 0 || got.HasRangeStart {
		t.Errorf("after reset: %+v", got)
	}
}

func TestStateDoesNotLeakBetweenChats(t *testing.T) {
	st := NewStore()
	st.Get(1).Step = models.StepCleaners

	if got := st.Get(2).Step; got != models.StepNone {
		t.Errorf("chat 2 step = %v, want StepNone", got)
	}
}

func TestToggleIsIdempotentPairwise(t *testing.T) {
	s := &Session{}

	if !s.Toggle(7) {
		t.Error("first toggle should select")
	}
	if s.Toggle(7) {
		t.Error("second toggle should deselect")
	}
	if s.Selected(7) {
		t.Error("7 still selected after two toggles")
	}
}

func TestToggleKeepsSelectionOrder(t *testing.T) {
	s := &Session{}
	s.Toggle(3)
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(1) // remove the middle one

	want := []int64{3, 2}
	if len(s.SelectedIDs) != len(want) {
		t.Fatalf("SelectedIDs = %v, want %v", s.SelectedIDs, want)
	}
	for i := range want {
		if s.SelectedIDs[i] != want[i] {
			t.Fatalf("SelectedIDs = %v, want %v", s.SelectedIDs, want)
		}
	}
}

func TestDraftSetMatchesStep(t *testing.T) {
	var d Draft
	d.Set(models.StepCleaners, "Анна, Мария")
	d.Set(models.StepHelpers, "Иван")
	d.Set(models.StepPayments, "нет")
	d.Set(models.StepMalfunctions, "кран течет")

	if d.Cleaners != "Анна, Мария" || d.Helpers != "Иван" ||
		d.Payments != "нет" || d.Malfunctions != "кран течет" {
		t.Errorf("draft = %+v", d)
	}
}
