package notify

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/hamed0406/httpsaudit/internal/domain"
)

type Notifier interface {
	Send(ctx context.Context, title, text string) error
}

// Multi fans a message out to every notifier and reports all failures.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, title, text string) error {
	var err error
	for _, n := range m {
		if n == nil {
			continue
		}
		err = multierr.Append(err, n.Send(ctx, title, text))
	}
	return err
}

// SendSummary delivers a finished run's summary through n.
func SendSummary(ctx context.Context, n Notifier, sum domain.RunSummary) error {
	return n.Send(ctx, "HTTPS audit "+sum.RunID, SummaryText(sum))
}

// SummaryText renders the summary body as Slack mrkdwn lines.
func SummaryText(sum domain.RunSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d domains in %.2fs\n", sum.Total, sum.Elapsed.Seconds())
	for _, c := range domain.Categories {
		fmt.Fprintf(&b, "• %s: %d\n", c, sum.Counts[c])
	}
	if sum.UnexpectedErrors > 0 {
		fmt.Fprintf(&b, "• unexpected_errors: %d\n", sum.UnexpectedErrors)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
