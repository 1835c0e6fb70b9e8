package utils

import "time"

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses an ISO calendar date (2006-01-02). A blank string yields
// nil, meaning "no bound".
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseDateTime parses an ISO timestamp, tolerating the common variants
// clients send. A blank string yields nil.
func ParseDateTime(dateTimeStr string) (*time.Time, error) {
	if dateTimeStr == "" {
		return nil, nil
	}

	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, dateTimeStr)
		if err == nil {
			return &t, nil
		}
		lastErr = err
	}

	return nil, lastErr
}
