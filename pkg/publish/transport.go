// Package publish defines the transport a session publishes through and a
// simulated implementation of it. Real deployment is out of scope; the
// simulator reproduces the hosted service's observable behavior (latency,
// occasional failure, generated subdomain) behind the same interface a real
// client would get.
package publish

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/canvasite/canvasite-terminal/pkg/models"
)

// ErrServiceUnavailable is the failure the simulator surfaces. It is safe
// to retry immediately.
var ErrServiceUnavailable = errors.New("publishing service temporarily unavailable")

// Transport publishes a site and returns the public URL it is reachable
// at. Implementations must be safe to call again after a failure.
type Transport interface {
	Publish(ctx context.Context, site *models.Document) (string, error)
}

// Simulator fakes the publish round trip: it waits, fails at the
// configured rate, and otherwise mints a subdomain from the site name.
type Simulator struct {
	rng         *rand.Rand
	delay       time.Duration
	failureRate float64
}

// NewSimulator builds a simulator with the given failure rate in [0,1].
// The rand source is injected so tests can script outcomes.
func NewSimulator(src rand.Source, delay time.Duration, failureRate float64) *Simulator {
	return &Simulator{
		rng:         rand.New(src),
		delay:       delay,
		failureRate: failureRate,
	}
}

// DefaultSimulator matches the hosted service's observed behavior: two
// second round trip, one failure in ten.
func DefaultSimulator() *Simulator {
	return NewSimulator(rand.NewSource(time.Now().UnixNano()), 2*time.Second, 0.1)
}

func (s *Simulator) Publish(ctx context.Context, site *models.Document) (string, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	if s.rng.Float64() < s.failureRate {
		return "", ErrServiceUnavailable
	}

	subdomain := fmt.Sprintf("%s-%s", Slugify(site.Name), s.suffix(4))
	return fmt.Sprintf("https://%s.canvassite.com", subdomain), nil
}

func (s *Simulator) suffix(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[s.rng.Intn(len(alphabet))])
	}
	return b.String()
}

// Slugify lowercases the site name and strips everything outside [a-z0-9],
// matching the subdomain rules of the publish service.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
