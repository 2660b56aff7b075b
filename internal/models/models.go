package models

import "time"

// Admin is a registered bot user. Created on first /start, never mutated after.
type Admin struct {
	ID           int64  `db:"id"`
	TelegramID   int64  `db:"telegram_id"`
	Name         string `db:"name"`
	Username     string `db:"username"`
	RegisteredAt int64  `db:"registered_at"`
}

// Object is a managed property reports are filed against.
type Object struct {
	ID          int64  `db:"id"`
	Address     string `db:"address"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

// Label is what object buttons and report lines show.
func (o Object) Label() string {
	if o.Description != "" {
		return o.Description
	}
	return o.Address
}

// Report is one completed daily submission. Immutable after insert.
type Report struct {
	ID           int64     `db:"id"`
	AdminID      int64     `db:"admin_id"`
	Date         time.Time `db:"date"`
	Cleaners     string    `db:"cleaners"`
	Helpers      string    `db:"helpers"`
	Payments     string    `db:"payments"`
	Malfunctions string    `db:"malfunctions"`
	ReadyForRent bool      `db:"ready_for_rent"`
	ObjectID     int64     `db:"object_id"` // primary object, first of the selection
}

// ReportView is a Report with its admin and object references expanded,
// the shape the formatter consumes.
type ReportView struct {
	Report
	AdminName string
	Objects   []Object // selection order
}

// Role of a chat identity. A single owner id is configured externally.
type Role int

const (
	RoleAdmin Role = iota
	RoleOwner
)
