package fileio

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// A frame is stored as two tables: frame_columns holds the column names in
// order, frame holds one row per frame row with columns c0..cN.
const sqliteColumnsSchema = `CREATE TABLE frame_columns (
	ordinal INTEGER PRIMARY KEY,
	name    TEXT NOT NULL
)`

// withSQLiteFile runs fn against a database in a temporary file seeded with
// data, and returns the file's bytes afterwards.
func withSQLiteFile(data []byte, fn func(db *sql.DB) error) ([]byte, error) {
	tmp, err := os.CreateTemp("", "fileio-*.sqlite")
	if err != nil {
		return nil, err
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := fn(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := db.Close(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func decodeSQLite(data []byte) (*Frame, error) {
	var f *Frame
	_, err := withSQLiteFile(data, func(db *sql.DB) error {
		var err error
		f, err = readSQLiteFrame(db)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return f, nil
}

func readSQLiteFrame(db *sql.DB) (*Frame, error) {
	rows, err := db.Query(`SELECT name FROM frame_columns ORDER BY ordinal`)
	if err != nil {
		return nil, err
	}
	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, err
		}
		columns = append(columns, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	f := NewFrame(columns...)
	if len(columns) == 0 {
		return f, nil
	}

	rows, err = db.Query(fmt.Sprintf(`SELECT %s FROM frame ORDER BY row_id`, sqliteColumnList(len(columns))))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		cells := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, c := range cells {
			cells[i] = normalizeCell(c)
		}
		f.Rows = append(f.Rows, cells)
	}
	return f, rows.Err()
}

func encodeSQLite(f *Frame) ([]byte, error) {
	return withSQLiteFile(nil, func(db *sql.DB) error {
		return writeSQLiteFrame(db, f)
	})
}

func writeSQLiteFrame(db *sql.DB, f *Frame) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(sqliteColumnsSchema); err != nil {
		return err
	}
	schema := `CREATE TABLE frame (row_id INTEGER PRIMARY KEY`
	if len(f.Columns) > 0 {
		schema += ", " + sqliteColumnList(len(f.Columns))
	}
	if _, err := tx.Exec(schema + ")"); err != nil {
		return err
	}

	for i, name := range f.Columns {
		if _, err := tx.Exec(`INSERT INTO frame_columns (ordinal, name) VALUES (?, ?)`, i, name); err != nil {
			return err
		}
	}

	if len(f.Columns) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(f.Columns)+1), ", ")
		stmt, err := tx.Prepare(fmt.Sprintf(`INSERT INTO frame (row_id, %s) VALUES (%s)`,
			sqliteColumnList(len(f.Columns)), placeholders))
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, row := range f.Rows {
			args := make([]any, 0, len(f.Columns)+1)
			args = append(args, i)
			for j := range f.Columns {
				args = append(args, normalizeCell(cellAt(row, j)))
			}
			if _, err := stmt.Exec(args...); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

func sqliteColumnList(n int) string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = fmt.Sprintf("c%d", i)
	}
	return strings.Join(cols, ", ")
}
