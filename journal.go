package imgconv

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is a single conversion recorded in the journal.
type Entry struct {
	ID           int64
	Source       string
	SHA1         string
	Target       string
	SourceFormat Format
	TargetFormat Format
	Width        int
	Height       int
}

// Journal is a SQLite database recording every successful conversion.
type Journal struct {
	db *sql.DB
}

// NewJournal opens or creates the journal database in file.
func NewJournal(file string) (*Journal, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, source TEXT NOT NULL, sha1 TEXT NOT NULL, target TEXT NOT NULL, source_format INTEGER NOT NULL, target_format INTEGER NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Journal{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends e to the journal. The ID field is ignored.
func (j *Journal) Record(e Entry) error {
	if _, err := j.db.Exec("INSERT INTO conversion (source, sha1, target, source_format, target_format, width, height) VALUES (?, ?, ?, ?, ?, ?, ?)", e.Source, e.SHA1, e.Target, int(e.SourceFormat), int(e.TargetFormat), e.Width, e.Height); err != nil {
		return err
	}
	return nil
}

// Entries returns every recorded conversion, oldest first.
func (j *Journal) Entries() ([]Entry, error) {
	rows, err := j.db.Query("SELECT id, source, sha1, target, source_format, target_format, width, height FROM conversion ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Source, &e.SHA1, &e.Target, &e.SourceFormat, &e.TargetFormat, &e.Width, &e.Height); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Lookup returns the most recent conversion of a source file with the given
// SHA-1, or nil if there is none.
func (j *Journal) Lookup(sha string) (*Entry, error) {
	var e Entry
	switch err := j.db.QueryRow("SELECT id, source, sha1, target, source_format, target_format, width, height FROM conversion WHERE sha1 = ? ORDER BY id DESC LIMIT 1", sha).Scan(&e.ID, &e.Source, &e.SHA1, &e.Target, &e.SourceFormat, &e.TargetFormat, &e.Width, &e.Height); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &e, nil
	default:
		return nil, err
	}
}
