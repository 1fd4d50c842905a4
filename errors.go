package primeasn

import (
	"errors"
	"fmt"

	"github.com/hupe1980/primeasn/blobstore"
	"github.com/hupe1980/primeasn/sieve"
)

var (
	// ErrInvalidBound is returned when the largest candidate is too small to sieve.
	ErrInvalidBound = errors.New("invalid sieve bound")

	// ErrCandidateOutOfRange is returned when a candidate lies outside the sieve.
	ErrCandidateOutOfRange = errors.New("candidate out of range")

	// ErrNoCandidates is returned when no source produced a candidate.
	ErrNoCandidates = errors.New("no candidates")

	// ErrSourceNotFound is returned when a dataset location does not exist.
	ErrSourceNotFound = errors.New("source not found")

	// ErrUnsupportedScheme is returned for locations without a registered store.
	ErrUnsupportedScheme = errors.New("unsupported location scheme")

	// ErrMemoryLimit is returned when the sieve table would exceed the memory limit.
	ErrMemoryLimit = errors.New("memory limit exceeded")
)

// SourceError records the dataset location an error came from.
//
// The original underlying error can be accessed via errors.Unwrap.
type SourceError struct {
	Source string
	cause  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.cause)
}

func (e *SourceError) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Already public.
	if errors.Is(err, ErrInvalidBound) || errors.Is(err, ErrCandidateOutOfRange) ||
		errors.Is(err, ErrSourceNotFound) {
		return err
	}

	if errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}

	var be *sieve.BoundError
	if errors.As(err, &be) {
		return fmt.Errorf("%w: %w", ErrInvalidBound, err)
	}
	if errors.Is(err, sieve.ErrIndexOutOfRange) {
		return fmt.Errorf("%w: %w", ErrCandidateOutOfRange, err)
	}

	return err
}
