package probe

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hamed0406/httpsaudit/internal/domain"
)

const DefaultTimeout = 10 * time.Second

// Prober checks a domain over HTTPS and then over plain HTTP.
type Prober struct {
	Secure    *http.Client // follows redirects
	Plain     *http.Client // stops at the first response
	UserAgent string
}

// NewProber builds both clients on top of transport. A nil transport
// means a clone of http.DefaultTransport.
func NewProber(timeout time.Duration, transport http.RoundTripper) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if transport == nil {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}
	return &Prober{
		Secure: &http.Client{Timeout: timeout, Transport: transport},
		Plain: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (p *Prober) Probe(ctx context.Context, name string) (*domain.DomainResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	secureReq, err := p.newRequest(ctx, "https://"+name)
	if err != nil {
		return nil, err
	}
	plainReq, err := p.newRequest(ctx, "http://"+name)
	if err != nil {
		return nil, err
	}

	secure := p.checkHTTPS(secureReq)
	plain := p.checkHTTP(plainReq)

	return &domain.DomainResult{
		Domain:   name,
		Category: Classify(secure.Reachable, plain.Reachable),
		Message:  fmt.Sprintf("%s\tHTTPS: %s | HTTP: %s", name, secure.Describe(), plain.Describe()),
		HTTPS:    secure,
		HTTP:     plain,
	}, nil
}

type categoryRule struct {
	category domain.Category
	matches  func(https, http bool) bool
}

// Evaluated in order, first match wins. The last rule can never match
// once the first three have been tried; it is kept so every input maps
// to some category.
var categoryRules = []categoryRule{
	{domain.CategoryNormal, func(https, http bool) bool { return https && !http }},
	{domain.CategoryHTTPSFail, func(https, _ bool) bool { return !https }},
	{domain.CategoryHTTPAccessible, func(https, http bool) bool { return https && http }},
	{domain.CategoryOther, func(bool, bool) bool { return true }},
}

// Classify derives the category from the reachability of both protocols.
func Classify(httpsReachable, httpReachable bool) domain.Category {
	for _, r := range categoryRules {
		if r.matches(httpsReachable, httpReachable) {
			return r.category
		}
	}
	return domain.CategoryOther
}
