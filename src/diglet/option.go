// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet

import (
	"time"

	"github.com/miekg/dns"
	"golang.org/x/time/rate"
)

// Option is a functional option for configuring a [Digger].
type Option func(*Digger)

// WithResolvers sets the resolver addresses the digger rotates through,
// using the default round-robin strategy. Order and duplicates are
// preserved. An empty list causes [New] to fail with [ErrEmptyPool].
//
// This option is ignored when a custom strategy is set via
// [WithStrategy].
func WithResolvers(addrs ...string) Option {
	return func(d *Digger) {
		d.resolverAddrs = addrs
	}
}

// WithStrategy replaces the rotation strategy entirely. The strategy
// must be safe for concurrent use when combined with [WithWorkers].
//
// Passing nil is a no-op and the round-robin pool built from
// [WithResolvers] is used.
func WithStrategy(s Strategy) Option {
	return func(d *Digger) {
		if s != nil {
			d.strategy = s
		}
	}
}

// WithRecordTypes sets the record types queried per domain, in the
// given order. The default is A, TXT, MX.
//
// Unsupported types are kept: they show up as UNSUPPORTED outcomes in
// the results rather than being silently dropped.
func WithRecordTypes(types ...RecordType) Option {
	return func(d *Digger) {
		if len(types) > 0 {
			d.types = types
		}
	}
}

// WithTimeout sets the timeout for each DNS query.
// The default is 5 seconds.
//
// This option has no effect if a custom DNS client is set via
// [WithDNSClient], as the custom client's own Timeout configuration
// takes precedence.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Digger) {
		d.timeout = timeout
	}
}

// WithMaxRetries sets the maximum number of extra attempts per query
// after a retryable failure (SERVFAIL, REFUSED, timeout). Each retry
// pulls a fresh resolver from the pool. NXDOMAIN and empty-but-valid
// answers are terminal and never retried.
//
// The default is 0: exactly one attempt per query.
func WithMaxRetries(n int) Option {
	return func(d *Digger) {
		if n >= 0 {
			d.maxRetries = n
		}
	}
}

// WithWorkers sets the number of concurrent query workers. The default
// is 1, meaning fully sequential execution with one query in flight at
// a time. With more workers, queries are dispatched onto a bounded
// worker pool; result ordering stays deterministic regardless of which
// query finishes first.
func WithWorkers(n int) Option {
	return func(d *Digger) {
		if n > 0 {
			d.workers = n
		}
	}
}

// WithRateLimit caps the overall query rate at qps queries per second
// across all workers. Zero (the default) means unlimited.
func WithRateLimit(qps int) Option {
	return func(d *Digger) {
		if qps > 0 {
			burst := qps / 10
			if burst < 1 {
				burst = 1
			}
			d.limiter = rate.NewLimiter(rate.Limit(qps), burst)
		}
	}
}

// WithCache enables outcome caching for repeated (domain, type) pairs
// within a run. Caching is disabled by default; see [Cache] for the
// rotation-order caveat. Use [NewMemoryCache] for the built-in TTL
// cache, or pass a custom implementation.
func WithCache(cache Cache) Option {
	return func(d *Digger) {
		d.cache = cache
	}
}

// WithDNSClient sets a custom [dns.Client] for all queries. This allows
// full control over the transport configuration, including:
//
//   - TCP transport (Net: "tcp")
//   - DNS-over-TLS (Net: "tcp-tls" with TLSConfig)
//   - Custom Dialer for proxy or interface binding
//
// When set, [WithTimeout] will not affect DNS queries; the client's own
// Timeout is used instead.
//
// Passing nil is a no-op and the default UDP client will be used.
func WithDNSClient(client *dns.Client) Option {
	return func(d *Digger) {
		if client != nil {
			d.dnsClient = client
		}
	}
}

// WithEDNS0Size sets the EDNS0 UDP buffer size advertised on outgoing
// queries. The default is 1232 bytes, the recommended size to prevent
// IP fragmentation over UDP.
//
// See: https://dnsflagday.net/2020/
func WithEDNS0Size(size uint16) Option {
	return func(d *Digger) {
		if size > 0 {
			d.edns0Size = size
		}
	}
}
