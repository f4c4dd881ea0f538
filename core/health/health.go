// Package health checks whether the API server is up.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"

	"github.com/trezcool/solvo/core"
)

const StatusOK = "OK"

// Status is the body of GET /api/health.
type Status struct {
	Status    string         `json:"status"`
	Timestamp core.Timestamp `json:"timestamp"`
}

func NewStatus(now time.Time) Status {
	return Status{Status: StatusOK, Timestamp: core.NewTimestamp(now)}
}

// Policy bounds how hard a Prober tries before giving up.
type Policy struct {
	Attempts    int
	Interval    time.Duration // before the 2nd attempt; doubles after each failure
	MaxInterval time.Duration
	Timeout     time.Duration // per attempt
}

var DefaultPolicy = Policy{
	Attempts:    3,
	Interval:    500 * time.Millisecond,
	MaxInterval: 4 * time.Second,
	Timeout:     2 * time.Second,
}

type Prober struct {
	client *http.Client
	url    string
	policy Policy
}

// NewProber returns a Prober for the health endpoint at url.
// A nil client means http.DefaultClient.
func NewProber(client *http.Client, url string, policy Policy) *Prober {
	if client == nil {
		client = http.DefaultClient
	}
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}
	return &Prober{client: client, url: url, policy: policy}
}

// Check calls the health endpoint until it answers 2xx with an OK status,
// the attempts are exhausted or ctx is done.
func (p *Prober) Check(ctx context.Context) (Status, error) {
	var st Status
	b := retry.NewExponential(p.policy.Interval)
	if p.policy.MaxInterval > 0 {
		b = retry.WithCappedDuration(p.policy.MaxInterval, b)
	}
	b = retry.WithMaxRetries(uint64(p.policy.Attempts-1), b)

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		var err error
		st, err = p.once(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return Status{}, errors.Wrapf(err, "checking %s", p.url)
	}
	return st, nil
}

func (p *Prober) once(ctx context.Context) (Status, error) {
	if p.policy.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.policy.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return Status{}, errors.Wrap(err, "building request")
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Status{}, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Status{}, errors.Errorf("unexpected status %d", resp.StatusCode)
	}
	var st Status
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return Status{}, errors.Wrap(err, "decoding body")
	}
	if st.Status != StatusOK {
		return Status{}, errors.Errorf("unexpected health status %q", st.Status)
	}
	return st, nil
}
