package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

func Connect(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Source reads tables straight from Postgres, bypassing the REST layer.
// Rows have the same shape the Supabase client returns.
type Source struct {
	DB *sql.DB
}

func NewSource(dbx *sql.DB) *Source {
	return &Source{DB: dbx}
}

func (s *Source) SelectAll(ctx context.Context, table string) ([]map[string]any, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT * FROM "+pq.QuoteIdentifier(table))
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("select %s: columns: %w", table, err)
	}

	out := []map[string]any{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("select %s: scan: %w", table, err)
		}
		out = append(out, rowMap(cols, vals))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	return out, nil
}

// lib/pq hands text and numeric columns back as []byte.
func rowMap(cols []string, vals []any) map[string]any {
	m := make(map[string]any, len(cols))
	for i, c := range cols {
		if b, ok := vals[i].([]byte); ok {
			m[c] = string(b)
			continue
		}
		m[c] = vals[i]
	}
	return m
}
