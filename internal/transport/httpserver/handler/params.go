package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func parseIDParam(value string) (uint, error) {
	value = strings.TrimSpace(value)
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil || parsed == 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return uint(parsed), nil
}

// parseMonthParam reads a YYYY-MM query value, defaulting to the current
// month when absent.
func parseMonthParam(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Now().UTC().Format("2006-01"), nil
	}
	if _, err := time.Parse("2006-01", value); err != nil {
		return "", fmt.Errorf("month must be in YYYY-MM format")
	}
	return value, nil
}

func parseDateRequired(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	return time.Parse("2006-01-02", value)
}
