package delegated

import (
	"errors"
	"io"
)

// Predicate selects records.
type Predicate func(Record) bool

// TypeIs matches records of the given resource type ("asn", "ipv4", "ipv6").
func TypeIs(typ string) Predicate {
	return func(r Record) bool { return r.Type == typ }
}

// StatusIs matches records with the given status ("available", "allocated", ...).
func StatusIs(status string) Predicate {
	return func(r Record) bool { return r.Status == status }
}

// All matches records accepted by every predicate. With no predicates it matches everything.
func All(preds ...Predicate) Predicate {
	return func(r Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// FreeASN matches AS numbers that are not assigned to anyone.
var FreeASN = All(TypeIs("asn"), StatusIs("available"))

// Candidates reads all records and returns, in file order, the integer start
// value of each record matched by p.
func Candidates(r *Reader, p Predicate) ([]int, error) {
	var out []int
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if !p(rec) {
			continue
		}
		v, err := rec.StartInt()
		if err != nil {
			return nil, &ParseError{Line: r.Line(), Reason: err.Error()}
		}
		out = append(out, v)
	}
}
