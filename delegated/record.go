package delegated

import (
	"fmt"
	"strconv"
)

// Record is a single resource line.
type Record struct {
	Registry   string
	CC         string
	Type       string
	Start      string
	Value      string
	Date       string
	Status     string
	OpaqueID   string
	Extensions []string
}

// StartInt returns Start as an integer. Only meaningful for asn records.
func (r Record) StartInt() (int, error) {
	v, err := strconv.Atoi(r.Start)
	if err != nil {
		return 0, fmt.Errorf("start %q is not an integer", r.Start)
	}
	if v < 0 {
		return 0, fmt.Errorf("start %d is negative", v)
	}
	return v, nil
}

// Header is the version line of a file.
type Header struct {
	Version   string
	Registry  string
	Serial    string
	Records   int
	StartDate string
	EndDate   string
	UTCOffset string
}

// Summary is a per-type record count line.
type Summary struct {
	Registry string
	Type     string
	Count    int
}

// ParseError reports a malformed line.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("delegated: line %d: %s", e.Line, e.Reason)
}
