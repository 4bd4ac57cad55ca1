package probe

import (
	"context"
	"errors"

	"github.com/hamed0406/httpsaudit/internal/domain"
)

// ErrInvalidDomain is returned when a domain cannot be turned into a request URL.
var ErrInvalidDomain = errors.New("invalid domain")

// Checker classifies a single domain.
//
// A nil result with a nil error means the domain was blank and was skipped.
// Ordinary network failures are folded into the result; only failures the
// checker cannot interpret are returned as errors.
type Checker interface {
	Probe(ctx context.Context, domain string) (*domain.DomainResult, error)
}
