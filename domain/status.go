package domain

import (
	"fmt"
	"strings"
)

// Status is the advertised health of an instance.
type Status string

const (
	StatusUp           Status = "UP"
	StatusDown         Status = "DOWN"
	StatusStarting     Status = "STARTING"
	StatusOutOfService Status = "OUT_OF_SERVICE"
	StatusUnknown      Status = "UNKNOWN"
)

// AllStatuses lists every valid status.
var AllStatuses = []Status{StatusUp, StatusDown, StatusStarting, StatusOutOfService, StatusUnknown}

// ParseStatus parses s case-insensitively. Unknown names are rejected.
func ParseStatus(s string) (Status, error) {
	candidate := Status(strings.ToUpper(strings.TrimSpace(s)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusUp, StatusDown, StatusStarting, StatusOutOfService, StatusUnknown:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
