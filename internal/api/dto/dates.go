package dto

import "time"

// dateLayout is the wire format for date fields.
const dateLayout = "2006-01-02"

// FormatDate renders a timestamp as a wire date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatDatePtr renders an optional timestamp as an optional wire date.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// ParseDate parses an optional wire date. Empty input yields nil.
func ParseDate(val string) (*time.Time, error) {
	if val == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, val)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
