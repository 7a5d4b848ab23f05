// Package catalog holds the controllers behind the admin screens: the
// infinite-scroll pager, the per-row inline editor, the field warning set and
// the pending image selection. Each controller talks to the catalog API
// through a narrow interface so the handlers stay thin and the logic stays
// testable without a network.
package catalog

import "github.com/shopspring/decimal"

// Warning is one active field-level validation warning.
type Warning struct {
	Field   string
	Message string
}

// Warnings tracks the active warnings of a form or an edit row. At most one
// warning is active per field; adding a warning for an already-warned field
// is a no-op, so the most recent evaluation has to Filter first to replace a
// message.
type Warnings struct {
	list []Warning
}

// Set records a warning for field unless one is already present.
func (w *Warnings) Set(message, field string) {
	for _, warning := range w.list {
		if warning.Field == field {
			return
		}
	}
	w.list = append(w.list, Warning{Field: field, Message: message})
}

// Filter removes the warning for field, if present.
func (w *Warnings) Filter(field string) {
	out := w.list[:0]
	for _, warning := range w.list {
		if warning.Field != field {
			out = append(out, warning)
		}
	}
	w.list = out
}

// Has reports whether field currently has a warning.
func (w *Warnings) Has(field string) bool {
	for _, warning := range w.list {
		if warning.Field == field {
			return true
		}
	}
	return false
}

// Message returns the active warning message for field, or "".
func (w *Warnings) Message(field string) string {
	for _, warning := range w.list {
		if warning.Field == field {
			return warning.Message
		}
	}
	return ""
}

// All returns the active warnings in insertion order.
func (w *Warnings) All() []Warning {
	out := make([]Warning, len(w.list))
	copy(out, w.list)
	return out
}

// Empty reports whether no warnings are active.
func (w *Warnings) Empty() bool { return len(w.list) == 0 }

// Labels and rule classes for the validated product fields.
var fieldLabels = map[string]string{
	"name":            "Name",
	"sku":             "SKU",
	"price":           "Price",
	"weight":          "Weight",
	"inventory_level": "Inventory level",
	"brand_name":      "Brand name",
}

var wholeNumberFields = map[string]bool{
	"weight":          true,
	"inventory_level": true,
}

// ValidateField re-evaluates a single field and updates the warning set for
// that field only. Empty input always yields the "required" warning. For the
// whole-number fields a non-empty value that is not a whole number yields the
// "whole number" warning, replacing any earlier warning for the field.
//
// Fields outside the rule table (such as the type selector) are left alone.
func ValidateField(w *Warnings, field, value string) {
	label, ok := fieldLabels[field]
	if !ok {
		return
	}
	if value == "" {
		w.Set(label+" is required", field)
		return
	}
	w.Filter(field)
	if wholeNumberFields[field] && !isWholeNumber(value) {
		w.Set(label+" must be a whole number", field)
	}
}

// isWholeNumber reports whether value parses as a number with no fractional
// part. Unparseable input counts as non-whole rather than escaping the rule.
func isWholeNumber(value string) bool {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return false
	}
	return d.IsInteger()
}

// ParseNumber converts a staged field value to the wire representation,
// falling back to zero for unparseable input.
func ParseNumber(value string) float64 {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}
