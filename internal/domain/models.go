package domain

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryNormal         Category = "normal"
	CategoryHTTPSFail      Category = "https_fail"
	CategoryHTTPAccessible Category = "http_accessible"
	CategoryOther          Category = "other"
)

// Categories lists every category in the order artifacts are written and reported.
var Categories = []Category{
	CategoryNormal,
	CategoryHTTPSFail,
	CategoryHTTPAccessible,
	CategoryOther,
}

type StatusKind int

const (
	NoResponse StatusKind = iota
	Code
	Failure
)

// Status is what one request produced: a response code, a transport
// failure, or nothing at all.
type Status struct {
	Kind  StatusKind
	Code  int
	Error string
}

func StatusCode(code int) Status      { return Status{Kind: Code, Code: code} }
func StatusFailure(msg string) Status { return Status{Kind: Failure, Error: msg} }

func (s Status) String() string {
	switch s.Kind {
	case Code:
		return fmt.Sprintf("status code %d", s.Code)
	case Failure:
		if s.Error != "" {
			return "error: " + s.Error
		}
	}
	return "no response"
}

// ProbeOutcome is the result of one protocol check for one domain.
type ProbeOutcome struct {
	Status    Status `json:"-"`
	Note      string `json:"note,omitempty"`
	Reachable bool   `json:"reachable"`
}

// StatusCode reports the response code, if a response was received.
func (o ProbeOutcome) StatusCode() (int, bool) {
	return o.Status.Code, o.Status.Kind == Code
}

// ErrorMessage reports the failure, if the request failed before a response.
// A failure without a message renders as "no response" and reports false.
func (o ProbeOutcome) ErrorMessage() (string, bool) {
	if o.Status.Kind != Failure || o.Status.Error == "" {
		return "", false
	}
	return o.Status.Error, true
}

// Describe renders the status with the note appended in parentheses.
func (o ProbeOutcome) Describe() string {
	if o.Note != "" {
		return fmt.Sprintf("%s (%s)", o.Status, o.Note)
	}
	return o.Status.String()
}

type DomainResult struct {
	Domain   string       `json:"domain"`
	Category Category     `json:"category"`
	Message  string       `json:"message"`
	HTTPS    ProbeOutcome `json:"https"`
	HTTP     ProbeOutcome `json:"http"`
}

// Artifact is one output file produced by a run.
type Artifact struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type RunSummary struct {
	RunID            string           `json:"run_id"`
	StartedAt        time.Time        `json:"started_at"`
	Total            int              `json:"total"`
	Elapsed          time.Duration    `json:"elapsed"`
	Counts           map[Category]int `json:"counts"`
	UnexpectedErrors int              `json:"unexpected_errors"`
	Artifacts        []Artifact       `json:"artifacts"`
}
