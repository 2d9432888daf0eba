package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MaxMinutes  = 99
	MaxSeconds  = 59
	MaxDuration = MaxMinutes*time.Minute + MaxSeconds*time.Second
)

// ValidationError reports user input rejected before any state changes.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ValidateName trims and checks a template or customer name.
func ValidateName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Field: field, Message: "must not be empty"}
	}
	return name, nil
}

// ValidateDuration checks that d is whole seconds within (0, 99:59].
func ValidateDuration(d time.Duration) error {
	if d%time.Second != 0 {
		return &ValidationError{Field: "duration", Message: "must be whole seconds"}
	}
	if d <= 0 {
		return &ValidationError{Field: "duration", Message: "must be greater than 00:00"}
	}
	if d > MaxDuration {
		return &ValidationError{Field: "duration", Message: "must be at most 99:59"}
	}
	return nil
}

// ParseDuration converts minute and second digit fields into a duration.
// Blank fields count as zero.
func ParseDuration(minutes, seconds string) (time.Duration, error) {
	m, err := parseField("minutes", minutes, MaxMinutes)
	if err != nil {
		return 0, err
	}
	s, err := parseField("seconds", seconds, MaxSeconds)
	if err != nil {
		return 0, err
	}
	d := time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	if err := ValidateDuration(d); err != nil {
		return 0, err
	}
	return d, nil
}

// ParseClock accepts "MM:SS" (or bare minutes) as typed by the operator.
func ParseClock(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	mins, secs, found := strings.Cut(value, ":")
	if !found {
		return ParseDuration(mins, "")
	}
	return ParseDuration(mins, secs)
}

func parseField(field, value string, max int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	if len(value) > 2 {
		return 0, &ValidationError{Field: field, Message: "must be at most two digits"}
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, &ValidationError{Field: field, Message: "must be a number"}
	}
	if n > max {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("must be between 00 and %02d", max)}
	}
	return n, nil
}
