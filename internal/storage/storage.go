package storage

import (
	"database/sql"
	"embed"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"telegram-report-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = migrate(db); err != nil {
		return nil, err
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

// ---------- admins ----------------------------------------------------------

func (d *DB) CreateAdmin(a *models.Admin) error {
	if a.RegisteredAt == 0 {
		a.RegisteredAt = time.Now().Unix()
	}
	res, err := d.Exec(`
        INSERT INTO admins (telegram_id, name, username, registered_at)
        VALUES (?,?,?,?)`,
		a.TelegramID, a.Name, a.Username, a.RegisteredAt)
	if err != nil {
		return err
	}
	a.ID, err = res.LastInsertId()
	return err
}

// GetAdminByTelegramID returns nil, nil when the identity is unknown.
func (d *DB) GetAdminByTelegramID(telegramID int64) (*models.Admin, error) {
	var a models.Admin
	err := d.QueryRow(`
        SELECT id, telegram_id, name, username, registered_at
        FROM admins WHERE telegram_id=?`, telegramID,
	).Scan(&a.ID, &a.TelegramID, &a.Name, &a.Username, &a.RegisteredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (d *DB) ListAdmins() ([]models.Admin, error) {
	rows, err := d.Query(`SELECT id, telegram_id, name, username, registered_at FROM admins`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []models.Admin
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.TelegramID, &a.Name, &a.Username, &a.RegisteredAt); err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

// ---------- objects ---------------------------------------------------------

func (d *DB) CreateObject(o *models.Object) error {
	res, err := d.Exec(`
        INSERT INTO objects (address, name, description) VALUES (?,?,?)`,
		o.Address, o.Name, o.Description)
	if err != nil {
		return err
	}
	o.ID, err = res.LastInsertId()
	return err
}

// GetObject returns nil, nil when the id is gone (e.g. deleted under a stale
// keyboard).
func (d *DB) GetObject(id int64) (*models.Object, error) {
	var o models.Object
	err := d.QueryRow(`
        SELECT id, address, name, description FROM objects WHERE id=?`, id,
	).Scan(&o.ID, &o.Address, &o.Name, &o.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (d *DB) ListObjects() ([]models.Object, error) {
	rows, err := d.Query(`SELECT id, address, name, description FROM objects ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []models.Object
	for rows.Next() {
		var o models.Object
		if err := rows.Scan(&o.ID, &o.Address, &o.Name, &o.Description); err != nil {
			return nil, err
		}
		res = append(res, o)
	}
	return res, rows.Err()
}

// DeleteObject reports whether a row was actually removed.
func (d *DB) DeleteObject(id int64) (bool, error) {
	res, err := d.Exec(`DELETE FROM objects WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ---------- reports ---------------------------------------------------------

// CreateReport inserts the report and its ordered object set in one
// transaction. objectIDs must be non-empty; the first entry is the primary.
func (d *DB) CreateReport(r *models.Report, objectIDs []int64) error {
	tx, err := d.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if r.Date.IsZero() {
		r.Date = time.Now()
	}
	r.ObjectID = objectIDs[0]

	res, err := tx.Exec(`
        INSERT INTO reports (admin_id, date, cleaners, helpers, payments,
                             malfunctions, ready_for_rent, object_id)
        VALUES (?,?,?,?,?,?,?,?)`,
		r.AdminID, r.Date.Unix(), r.Cleaners, r.Helpers, r.Payments,
		r.Malfunctions, boolToInt(r.ReadyForRent), r.ObjectID)
	if err != nil {
		return err
	}
	if r.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	for pos, oid := range objectIDs {
		if _, err := tx.Exec(`
            INSERT INTO report_objects (report_id, object_id, position)
            VALUES (?,?,?)`, r.ID, oid, pos); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// HasReportBetween implements the duplicate-submission guard: does the admin
// already have a report with a timestamp inside [from, to)?
func (d *DB) HasReportBetween(adminID int64, from, to time.Time) (bool, error) {
	var one int
	err := d.QueryRow(`
        SELECT 1 FROM reports WHERE admin_id=? AND date>=? AND date<? LIMIT 1`,
		adminID, from.Unix(), to.Unix(),
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// ListReportsBetween fetches reports with date in [from, to), expanded with
// the admin name and the ordered object set. adminID 0 means all admins.
func (d *DB) ListReportsBetween(from, to time.Time, adminID int64) ([]models.ReportView, error) {
	q := `
        SELECT r.id, r.admin_id, r.date, r.cleaners, r.helpers, r.payments,
               r.malfunctions, r.ready_for_rent, r.object_id, a.name
        FROM reports r
        JOIN admins a ON a.id = r.admin_id
        WHERE r.date>=? AND r.date<?`
	args := []any{from.Unix(), to.Unix()}
	if adminID != 0 {
		q += ` AND r.admin_id=?`
		args = append(args, adminID)
	}
	q += ` ORDER BY r.date`

	rows, err := d.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.ReportView
	for rows.Next() {
		var v models.ReportView
		var ts int64
		var ready int
		if err := rows.Scan(&v.ID, &v.AdminID, &ts, &v.Cleaners, &v.Helpers,
			&v.Payments, &v.Malfunctions, &ready, &v.ObjectID, &v.AdminName); err != nil {
			return nil, err
		}
		v.Date = time.Unix(ts, 0)
		v.ReadyForRent = ready != 0
		res = append(res, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range res {
		objs, err := d.reportObjects(res[i].ID)
		if err != nil {
			return nil, err
		}
		res[i].Objects = objs
	}
	return res, nil
}

// reportObjects expands the ordered object references of one report. Objects
// deleted after submission are silently skipped.
func (d *DB) reportObjects(reportID int64) ([]models.Object, error) {
	rows, err := d.Query(`
        SELECT o.id, o.address, o.name, o.description
        FROM report_objects ro
        JOIN objects o ON o.id = ro.object_id
        WHERE ro.report_id=?
        ORDER BY ro.position`, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []models.Object
	for rows.Next() {
		var o models.Object
		if err := rows.Scan(&o.ID, &o.Address, &o.Name, &o.Description); err != nil {
			return nil, err
		}
		res = append(res, o)
	}
	return res, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
