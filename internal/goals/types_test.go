package goals

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFromRow(t *testing.T) {
	desc := "park loop"
	cases := []struct {
		name string
		row  map[string]any
		want Goal
	}{
		{
			name: "json numbers, null description",
			row:  map[string]any{"id": json.Number("1"), "title": "Run 5k", "description": nil, "is_completed": false},
			want: Goal{ID: 1, Title: "Run 5k", IsCompleted: false},
		},
		{
			name: "missing description, extra column",
			row:  map[string]any{"id": json.Number("7"), "title": "Read", "is_completed": true, "user_id": "u1"},
			want: Goal{ID: 7, Title: "Read", IsCompleted: true},
		},
		{
			name: "postgres driver types",
			row:  map[string]any{"id": int64(3), "title": "Run 5k", "description": desc, "is_completed": true},
			want: Goal{ID: 3, Title: "Run 5k", Description: &desc, IsCompleted: true},
		},
		{
			name: "largest id",
			row:  map[string]any{"id": json.Number("9223372036854775807"), "title": "Big", "is_completed": false},
			want: Goal{ID: 9223372036854775807, Title: "Big"},
		},
		{
			name: "integral float",
			row:  map[string]any{"id": 4.0, "title": "Swim", "is_completed": false},
			want: Goal{ID: 4, Title: "Swim"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromRow(tc.row)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tc.want.ID || got.Title != tc.want.Title || got.IsCompleted != tc.want.IsCompleted {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
			switch {
			case tc.want.Description == nil && got.Description != nil:
				t.Fatalf("expected nil description, got %q", *got.Description)
			case tc.want.Description != nil && (got.Description == nil || *got.Description != *tc.want.Description):
				t.Fatalf("expected description %q, got %v", *tc.want.Description, got.Description)
			}
		})
	}
}

func TestFromRowInvalid(t *testing.T) {
	cases := []struct {
		name  string
		row   map[string]any
		field string
	}{
		{"missing id", map[string]any{"title": "x", "is_completed": false}, "id"},
		{"null id", map[string]any{"id": nil, "title": "x", "is_completed": false}, "id"},
		{"string id", map[string]any{"id": "1", "title": "x", "is_completed": false}, "id"},
		{"fractional id", map[string]any{"id": json.Number("1.5"), "title": "x", "is_completed": false}, "id"},
		{"id above int64", map[string]any{"id": json.Number("9223372036854775808"), "title": "x", "is_completed": false}, "id"},
		{"max id in float form", map[string]any{"id": json.Number("9223372036854775807.0"), "title": "x", "is_completed": false}, "id"},
		{"id beyond float precision", map[string]any{"id": json.Number("9007199254740993.0"), "title": "x", "is_completed": false}, "id"},
		{"id above int64 as float64", map[string]any{"id": float64(1 << 63), "title": "x", "is_completed": false}, "id"},
		{"missing title", map[string]any{"id": json.Number("1"), "is_completed": false}, "title"},
		{"null title", map[string]any{"id": json.Number("1"), "title": nil, "is_completed": false}, "title"},
		{"empty title", map[string]any{"id": json.Number("1"), "title": "", "is_completed": false}, "title"},
		{"blank title", map[string]any{"id": json.Number("1"), "title": "  ", "is_completed": false}, "title"},
		{"numeric title", map[string]any{"id": json.Number("1"), "title": json.Number("5"), "is_completed": false}, "title"},
		{"bad description", map[string]any{"id": json.Number("1"), "title": "x", "description": true, "is_completed": false}, "description"},
		{"missing is_completed", map[string]any{"id": json.Number("1"), "title": "x"}, "is_completed"},
		{"null is_completed", map[string]any{"id": json.Number("1"), "title": "x", "is_completed": nil}, "is_completed"},
		{"string is_completed", map[string]any{"id": json.Number("1"), "title": "x", "is_completed": "false"}, "is_completed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromRow(tc.row)
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FieldError, got %v", err)
			}
			if fe.Field != tc.field || fe.Reason == "" {
				t.Fatalf("expected field %q, got %q", tc.field, fe.Field)
			}
		})
	}
}

func TestFromRowsStopsAtFirstBadRow(t *testing.T) {
	rows := []map[string]any{
		{"id": json.Number("1"), "title": "ok", "is_completed": false},
		{"id": json.Number("2"), "is_completed": false},
	}
	if _, err := FromRows(rows); err == nil {
		t.Fatal("expected error")
	}

	got, err := FromRows(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
