package integration

import (
	"context"
	"net/http"
	"time"

	"github.com/techchallange/contact-backend/internal/httpx"
	"github.com/techchallange/contact-backend/internal/logger"
	"github.com/techchallange/contact-backend/internal/types"
)

const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 4000 * time.Millisecond
)

// Policy bounds the retry behavior of Send. The zero value falls back to the
// defaults (3 retries after the first attempt, fixed 4s delay).
type Policy struct {
	MaxRetries int
	Delay      time.Duration
}

func (p Policy) withDefaults() Policy {
	if p.MaxRetries <= 0 {
		p.MaxRetries = DefaultMaxRetries
	}
	if p.Delay <= 0 {
		p.Delay = DefaultRetryDelay
	}
	return p
}

// Invoker wraps remote calls with bounded retry and failure classification.
// It holds no per-call state and is safe for concurrent use.
type Invoker struct {
	log    *logger.Logger
	policy Policy
}

func NewInvoker(log *logger.Logger, policy Policy) *Invoker {
	return &Invoker{
		log:    log.With("service", "IntegrationInvoker"),
		policy: policy,
	}
}

// Send runs call, classifying each failure:
//
//   - connection-class transport failures are retried with a fixed delay, up
//     to the policy's retry bound; exhaustion yields ServiceUnavailableError;
//   - a 400 rejection from the remote endpoint yields the zero value and no
//     error, so callers treat "remote said no" as "nothing found";
//   - any other failure yields ServiceUnavailableError immediately, with the
//     original cause wrapped but not exposed in the message.
func Send[T any](ctx context.Context, inv *Invoker, call func() (T, error)) (T, error) {
	var zero T
	pol := inv.policy.withDefaults()

	for attempt := 0; ; attempt++ {
		out, err := call()
		if err == nil {
			return out, nil
		}

		if code, ok := httpx.StatusCode(err); ok && code == http.StatusBadRequest {
			return zero, nil
		}

		if !httpx.IsConnectionError(err) {
			return zero, types.NewServiceUnavailableError(err)
		}

		if attempt >= pol.MaxRetries {
			return zero, types.NewServiceUnavailableError(err)
		}

		inv.log.Warn("Remote call failed, retrying",
			"attempt", attempt+1,
			"max_retries", pol.MaxRetries,
			"delay", pol.Delay,
			"error", err,
		)

		timer := time.NewTimer(pol.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}
