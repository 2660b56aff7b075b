// Package session keeps the per-chat conversation state. Sessions live in
// memory only: a restart drops every in-progress form, which is acceptable
// because a form is a few messages long.
package session

import (
	"sync"
	"time"

	"telegram-report-bot/internal/models"
)

// Draft holds the form fields collected so far.
type Draft struct {
	Cleaners     string
	Helpers      string
	Payments     string
	Malfunctions string
}

// Set stores text into the field matching the step.
func (d *Draft) Set(step models.Step, text string) {
	switch step {
	case models.StepCleaners:
		d.Cleaners = text
	case models.StepHelpers:
		d.Helpers = text
	case models.StepPayments:
		d.Payments = text
	case models.StepMalfunctions:
		d.Malfunctions = text
	}
}

// Session is the ephemeral state of one chat.
type Session struct {
	Step          models.Step
	Menu          models.Menu
	Draft         Draft
	SelectedIDs   []int64 // multi-select, in selection order
	RangeStart    time.Time
	HasRangeStart bool
}

// Toggle flips membership of id in the multi-select, preserving the order of
// the remaining entries. Returns true when id ended up selected.
func (s *Session) Toggle(id int64) bool {
	for i, v := range s.SelectedIDs {
		if v == id {
			s.SelectedIDs = append(s.SelectedIDs[:i], s.SelectedIDs[i+1:]...)
			return false
		}
	}
	s.SelectedIDs = append(s.SelectedIDs, id)
	return true
}

// Selected reports membership of id in the multi-select.
func (s *Session) Selected(id int64) bool {
	for _, v := range s.SelectedIDs {
		if v == id {
			return true
		}
	}
	return false
}

// Store is a keyed session container. Handlers for different chats may run
// concurrently, so access goes through a mutex; within one chat the transport
// delivers updates sequentially.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the session for chatID, creating it with defaults if absent.
func (st *Store) Get(chatID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[chatID]
	if !ok {
		s = &Session{}
		st.sessions[chatID] = s
	}
	return s
}

// Reset restores the chat's session to defaults.
func (st *Store) Reset(chatID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[chatID] = &Session{}
}
