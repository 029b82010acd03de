package month

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Repository keeps the ledger's records in an in-memory sqlite database.
// Positions are dense and zero based; nothing outlives the process.
type Repository struct {
	db *sql.DB
}

func NewRepository() (*Repository, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// every new connection would get its own empty :memory: database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	repo := &Repository{db: db}
	if err := repo.init(); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

func (r *Repository) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS months (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		expected REAL NOT NULL,
		actual REAL NOT NULL,
		diff REAL NOT NULL
	)
	`
	_, err := r.db.Exec(query)
	return err
}

func (r *Repository) List() ([]Record, error) {
	rows, err := r.db.Query("SELECT name, expected, actual, diff FROM months ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Name, &rec.Expected, &rec.Actual, &rec.Diff); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *Repository) Len() (int, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM months").Scan(&n)
	return n, err
}

func (r *Repository) Append(rec Record) error {
	_, err := r.db.Exec(
		"INSERT INTO months (position, name, expected, actual, diff) VALUES ((SELECT COUNT(*) FROM months), ?, ?, ?, ?)",
		rec.Name, rec.Expected, rec.Actual, rec.Diff,
	)
	return err
}

func (r *Repository) Set(i int, rec Record) error {
	result, err := r.db.Exec(
		"UPDATE months SET name = ?, expected = ?, actual = ?, diff = ? WHERE position = ?",
		rec.Name, rec.Expected, rec.Actual, rec.Diff, i,
	)
	if err != nil {
		return err
	}
	return expectOneRow(result, i)
}

func (r *Repository) Remove(i int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM months WHERE position = ?", i)
	if err != nil {
		return err
	}
	if err := expectOneRow(result, i); err != nil {
		return err
	}
	// shift in ascending order so the primary key never collides
	rows, err := tx.Query("SELECT position FROM months WHERE position > ? ORDER BY position", i)
	if err != nil {
		return err
	}
	var later []int
	for rows.Next() {
		var p int
		if err := rows.Scan(&p); err != nil {
			rows.Close()
			return err
		}
		later = append(later, p)
	}
	rows.Close()
	for _, p := range later {
		if _, err := tx.Exec("UPDATE months SET position = ? WHERE position = ?", p-1, p); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ReplaceAll swaps the whole table contents in one transaction.
func (r *Repository) ReplaceAll(records []Record) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM months"); err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO months (position, name, expected, actual, diff) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, rec := range records {
		if _, err := stmt.Exec(i, rec.Name, rec.Expected, rec.Actual, rec.Diff); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func expectOneRow(result sql.Result, i int) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("no month at position %d", i)
	}
	return nil
}
