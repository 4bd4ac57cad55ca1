package probe

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/hamed0406/httpsaudit/internal/domain"
)

func (p *Prober) newRequest(ctx context.Context, target string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDomain, err)
	}
	if p.UserAgent != "" {
		req.Header.Set("User-Agent", p.UserAgent)
	}
	return req, nil
}

// checkHTTPS follows redirects and treats any final status below 500 as reachable.
func (p *Prober) checkHTTPS(req *http.Request) domain.ProbeOutcome {
	resp, err := p.Secure.Do(req)
	if err != nil {
		return domain.ProbeOutcome{Status: domain.StatusFailure(err.Error())}
	}
	defer resp.Body.Close()

	return domain.ProbeOutcome{
		Status:    domain.StatusCode(resp.StatusCode),
		Reachable: resp.StatusCode < http.StatusInternalServerError,
	}
}

// checkHTTP looks at the first response only. A redirect to an https
// location counts as not reachable over plain HTTP.
func (p *Prober) checkHTTP(req *http.Request) domain.ProbeOutcome {
	resp, err := p.Plain.Do(req)
	if err != nil {
		return domain.ProbeOutcome{Status: domain.StatusFailure(err.Error())}
	}
	defer resp.Body.Close()

	out := domain.ProbeOutcome{Status: domain.StatusCode(resp.StatusCode)}
	if resp.StatusCode >= http.StatusInternalServerError {
		out.Note = "5xx response"
		return out
	}
	if loc := resp.Header.Get("Location"); isRedirect(resp.StatusCode) && strings.HasPrefix(loc, "https") {
		out.Note = "redirects to " + loc
		return out
	}
	out.Reachable = true
	return out
}

// isRedirect matches the codes a client would actually follow; 300 and 304
// carry no redirect even when a Location header is present.
func isRedirect(code int) bool {
	switch code {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}
