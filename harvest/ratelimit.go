package harvest

import (
	"context"
	"sync"

	"github.com/fwojciec/ldharvest"
	"golang.org/x/time/rate"
)

var _ ldharvest.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces requests per domain using token buckets, keeping
// harvests polite when many configured pages share a host. Each domain gets
// its own bucket with a burst of 1, so the first request proceeds
// immediately and later ones wait out the configured interval.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rps     float64
}

// NewDomainLimiter creates a new DomainLimiter allowing rps requests per
// second per domain.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		rps:     rps,
	}
}

// Wait blocks until the domain's bucket allows another request, or until the
// context is canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(domain).Wait(ctx)
}

// bucket returns the domain's limiter, creating it on first sight.
func (d *DomainLimiter) bucket(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[domain]
	if !ok {
		b = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.buckets[domain] = b
	}
	return b
}
