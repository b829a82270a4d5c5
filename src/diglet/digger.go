// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet

import (
	"context"
	"fmt"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/miekg/dns"
	"golang.org/x/time/rate"
)

// Default configuration values.
const (
	defaultTimeout   = 5 * time.Second
	defaultWorkers   = 1
	defaultEDNS0Size = 1232 // Recommended size to prevent IP fragmentation
)

// Digger resolves batches of domains against a rotating pool of DNS
// resolvers, one query per (domain, record type) pair, and collects the
// classified outcomes into a [ResultSet].
type Digger struct {
	strategy      Strategy
	resolverAddrs []string
	types         []RecordType
	timeout       time.Duration
	maxRetries    int
	workers       int
	limiter       *rate.Limiter
	cache         Cache
	edns0Size     uint16
	dnsClient     *dns.Client
}

// New creates a [Digger]. Resolvers must be supplied via
// [WithResolvers] or a custom [WithStrategy]; without either, New fails
// with [ErrEmptyPool] so no query is ever attempted against an empty
// pool.
//
//	d, err := diglet.New(
//	    diglet.WithResolvers("1.1.1.1", "8.8.8.8"),
//	    diglet.WithRecordTypes(diglet.TypeA, diglet.TypeMX),
//	)
func New(opts ...Option) (*Digger, error) {
	d := &Digger{
		types:     DefaultRecordTypes(),
		timeout:   defaultTimeout,
		workers:   defaultWorkers,
		edns0Size: defaultEDNS0Size,
	}

	for _, opt := range opts {
		opt(d)
	}

	// Build the default round-robin pool unless a strategy was injected.
	if d.strategy == nil {
		pool, err := NewRoundRobin(d.resolverAddrs)
		if err != nil {
			return nil, err
		}
		d.strategy = pool
	}

	// Initialize shared DNS client if not set by WithDNSClient option.
	if d.dnsClient == nil {
		d.dnsClient = &dns.Client{
			Timeout: d.timeout,
			Net:     "udp",
		}
	}

	return d, nil
}

// Dig resolves every domain for every configured record type and
// returns one [DomainResult] per domain, in input order. Each (domain,
// type) pair draws exactly one resolver from the pool per attempt, so
// rotation happens at query granularity.
//
// Per-query failures are data: a timed-out or refused query is recorded
// in the result set and never aborts the rest of the batch. If ctx is
// cancelled mid-run, the remaining pairs are recorded as timeouts
// carrying the context error, and Dig returns ctx.Err() alongside the
// partial results.
func (d *Digger) Dig(ctx context.Context, domains ...string) (ResultSet, error) {
	results := make(ResultSet, len(domains))
	for i, domain := range domains {
		lookups := make([]Lookup, len(d.types))
		for j, rt := range d.types {
			lookups[j] = Lookup{Type: rt}
		}
		results[i] = DomainResult{Domain: domain, Lookups: lookups}
	}

	if d.workers > 1 {
		d.digConcurrent(ctx, domains, results)
	} else {
		d.digSequential(ctx, domains, results)
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// DigOne resolves a single domain. This is a convenience wrapper around
// [Digger.Dig].
func (d *Digger) DigOne(ctx context.Context, domain string) (DomainResult, error) {
	results, err := d.Dig(ctx, domain)
	return results[0], err
}

// RecordTypes returns a copy of the configured record-type order.
func (d *Digger) RecordTypes() []RecordType {
	types := make([]RecordType, len(d.types))
	copy(types, d.types)
	return types
}

// digSequential runs the baseline schedule: one query in flight at a
// time, domains in input order, types in configured order.
func (d *Digger) digSequential(ctx context.Context, domains []string, results ResultSet) {
	for i, domain := range domains {
		qname := normalizeDomain(domain)
		for j, rt := range d.types {
			results[i].Lookups[j].Outcome = d.safeLookup(ctx, qname, rt)
		}
	}
}

// digConcurrent dispatches all (domain, type) pairs onto a bounded
// worker pool. Every pair writes into its own preallocated slot, so the
// result set keeps the configured ordering no matter which query
// finishes first.
func (d *Digger) digConcurrent(ctx context.Context, domains []string, results ResultSet) {
	wp := workerpool.New(d.workers)
	for i := range domains {
		qname := normalizeDomain(domains[i])
		for j, rt := range d.types {
			slot := &results[i].Lookups[j].Outcome
			wp.Submit(func() {
				*slot = d.safeLookup(ctx, qname, rt)
			})
		}
	}
	wp.StopWait()
}

// safeLookup shields the batch from panics in a single query; a
// recovered panic becomes an outcome with [ErrInternalPanic].
func (d *Digger) safeLookup(ctx context.Context, qname string, rt RecordType) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{
				Status: StatusServerFailure,
				Err:    fmt.Errorf("%w: %v", ErrInternalPanic, r),
			}
		}
	}()
	return d.lookup(ctx, qname, rt)
}

// lookup runs one (domain, type) pair through cache, rate limit and the
// retry wrapper.
func (d *Digger) lookup(ctx context.Context, qname string, rt RecordType) Outcome {
	if err := ctx.Err(); err != nil {
		return Outcome{Status: StatusTimeout, Err: err}
	}

	var key string
	if d.cache != nil {
		key = qname + "|" + rt.String()
		if cached, ok := d.cache.Get(key); ok {
			return cached
		}
	}

	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return Outcome{Status: StatusTimeout, Err: err}
		}
	}

	out := d.queryWithRetries(ctx, qname, rt)

	if d.cache != nil {
		d.cache.Set(key, out)
	}
	return out
}

// queryWithRetries is the retry hook around the query executor. With
// the default of zero retries it issues exactly one query. Each extra
// attempt pulls the next resolver from the pool, so retries double as
// resolver failover. NXDOMAIN, unsupported types and successful answers
// (empty ones included) are terminal.
func (d *Digger) queryWithRetries(ctx context.Context, qname string, rt RecordType) Outcome {
	var out Outcome
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		out = executeQuery(ctx, d.dnsClient, qname, rt, d.strategy.Next(), d.edns0Size)
		switch out.Status {
		case StatusSuccess, StatusNameError, StatusUnsupported:
			return out
		}
		if ctx.Err() != nil {
			return out
		}
	}
	return out
}
