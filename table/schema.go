package table

import (
	"regexp"
	"strings"
)

type Column struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`
}

// Schema is the ordered column registry. Column keys are unique and immutable;
// the visible subset, in sequence order, defines both display order and export
// column order. Columns are never destroyed, visibility toggling substitutes
// for deletion.
type Schema struct {
	columns []Column
}

func NewSchema(columns []Column) *Schema {
	s := &Schema{
		columns: make([]Column, len(columns)),
	}
	copy(s.columns, columns)
	return s
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// DeriveKey turns a display label into a column key: lowercase, whitespace
// runs replaced with a single underscore.
func DeriveKey(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	return whitespaceRun.ReplaceAllString(key, "_")
}

// AddColumn registers a new visible column whose key is derived from label.
// The caller is responsible for backfilling existing records (Store.Backfill).
func (s *Schema) AddColumn(label string) (Column, error) {
	key := DeriveKey(label)
	if s.Has(key) {
		return Column{}, ErrDuplicateColumn
	}

	column := Column{
		Key:     key,
		Label:   strings.TrimSpace(label),
		Visible: true,
	}
	s.columns = append(s.columns, column)

	return column, nil
}

// ToggleVisibility flips the visible flag. Unknown keys are a no-op.
func (s *Schema) ToggleVisibility(key string) {
	for i := range s.columns {
		if s.columns[i].Key == key {
			s.columns[i].Visible = !s.columns[i].Visible
			return
		}
	}
}

func (s *Schema) SetLabel(key, label string) error {
	for i := range s.columns {
		if s.columns[i].Key == key {
			s.columns[i].Label = label
			return nil
		}
	}
	return ErrColumnNotFound
}

// Reorder replaces the column sequence wholesale. The supplied keys must be a
// permutation of the current key set.
func (s *Schema) Reorder(keys []string) error {
	if len(keys) != len(s.columns) {
		return ErrInvalidPermutation
	}

	byKey := map[string]Column{}
	for _, column := range s.columns {
		byKey[column.Key] = column
	}

	reordered := make([]Column, 0, len(keys))
	for _, key := range keys {
		column, exists := byKey[key]
		if !exists {
			return ErrInvalidPermutation
		}
		delete(byKey, key)
		reordered = append(reordered, column)
	}

	s.columns = reordered
	return nil
}

func (s *Schema) Has(key string) bool {
	for _, column := range s.columns {
		if column.Key == key {
			return true
		}
	}
	return false
}

func (s *Schema) Columns() []Column {
	columns := make([]Column, len(s.columns))
	copy(columns, s.columns)
	return columns
}

func (s *Schema) Visible() []Column {
	visible := []Column{}
	for _, column := range s.columns {
		if column.Visible {
			visible = append(visible, column)
		}
	}
	return visible
}
