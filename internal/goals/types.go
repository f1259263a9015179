package goals

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Goal is one row of the goals table as we expose it.
// Description is nil when the column is NULL or missing.
type Goal struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsCompleted bool    `json:"is_completed"`
}

// goalRow is the raw column set. Pointers tell "missing or null" apart
// from zero values so `required` means present.
type goalRow struct {
	ID          *int64  `json:"id" validate:"required"`
	Title       *string `json:"title" validate:"required,notblank"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed" validate:"required"`
}

// FieldError reports which column of a row failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("goal field %q: %s", e.Field, e.Reason)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	// report column names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	return v
}

// FromRow validates a loosely typed row into a Goal.
// Columns other than the four known ones are ignored.
func FromRow(row map[string]any) (Goal, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return Goal{}, fmt.Errorf("goal row: %w", err)
	}

	// encoding/json does the type checks: a fractional or out of range id,
	// a non-string title or a non-bool flag all fail here.
	var r goalRow
	if err := json.Unmarshal(raw, &r); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Goal{}, &FieldError{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}
		}
		return Goal{}, fmt.Errorf("goal row: %w", err)
	}

	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return Goal{}, &FieldError{Field: verrs[0].Field(), Reason: verrs[0].Tag()}
		}
		return Goal{}, fmt.Errorf("goal row: %w", err)
	}

	return Goal{
		ID:          *r.ID,
		Title:       *r.Title,
		Description: r.Description,
		IsCompleted: *r.IsCompleted,
	}, nil
}

// FromRows keeps the input order and stops at the first bad row.
func FromRows(rows []map[string]any) ([]Goal, error) {
	out := make([]Goal, 0, len(rows))
	for i, row := range rows {
		g, err := FromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, g)
	}
	return out, nil
}
