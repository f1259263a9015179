package db

import (
	"testing"
	"time"
)

func TestRowMap(t *testing.T) {
	now := time.Now()
	cols := []string{"id", "title", "description", "is_completed", "created_at"}
	vals := []any{int64(5), []byte("Run 5k"), nil, true, now}

	m := rowMap(cols, vals)

	if m["id"] != int64(5) {
		t.Fatalf("expected int64 id, got %T %v", m["id"], m["id"])
	}
	if m["title"] != "Run 5k" {
		t.Fatalf("expected []byte converted to string, got %T %v", m["title"], m["title"])
	}
	if v, ok := m["description"]; !ok || v != nil {
		t.Fatalf("expected present nil description, got %v (present=%v)", v, ok)
	}
	if m["is_completed"] != true {
		t.Fatalf("expected bool, got %v", m["is_completed"])
	}
	if m["created_at"] != now {
		t.Fatalf("expected time passthrough, got %v", m["created_at"])
	}
}

func TestConnectInvalidDSN(t *testing.T) {
	if _, err := Connect("postgres://%zz"); err == nil {
		t.Fatal("expected error for malformed dsn")
	}
}
