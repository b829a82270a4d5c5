// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package diglet resolves lists of domain names against a rotating pool
// of DNS resolvers and returns a structured, classified result per
// domain.
//
// The engine is built from three pieces: a resolver pool ([Strategy],
// with [RoundRobin] as the default rotation), a query executor that
// issues exactly one DNS query and classifies its outcome, and an
// orchestrator ([Digger]) that walks the domain list and the configured
// record types, drawing one resolver from the pool per query.
//
// # Outcome classification
//
// Every query ends in exactly one [Status]:
//
//   - [StatusSuccess]       — the resolver answered; the record list may be empty
//   - [StatusNameError]     — NXDOMAIN, the name does not exist
//   - [StatusServerFailure] — SERVFAIL or another server-side processing error
//   - [StatusRefused]       — the resolver declined to answer
//   - [StatusTimeout]       — no response within the bound (or unreachable resolver)
//   - [StatusUnsupported]   — record type outside the supported set; no query sent
//
// A successful query with zero answers is deliberately distinct from
// NXDOMAIN: a domain with no MX records exists all the same. Per-query
// failures are recorded in the [ResultSet] next to the successes; one
// bad domain or dead resolver never aborts the batch. The only fatal
// condition is [ErrEmptyPool], raised at construction time before any
// query is attempted.
//
// # Quick Start
//
//	d, err := diglet.New(
//	    diglet.WithResolvers("1.1.1.1", "8.8.8.8"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := d.Dig(context.Background(), "example.com", "example.org")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	diglet.WriteText(os.Stdout, results)
//
// # Configuration
//
// Use functional options to customize the digger:
//
//	d, err := diglet.New(
//	    // Rotate through these resolvers, round-robin, one per query.
//	    diglet.WithResolvers("1.1.1.1", "9.9.9.9", "8.8.8.8"),
//
//	    // Query these types per domain, in this order.
//	    diglet.WithRecordTypes(diglet.TypeA, diglet.TypeAAAA, diglet.TypeMX),
//
//	    // Bound each query at 2 seconds.
//	    diglet.WithTimeout(2*time.Second),
//
//	    // Retry transient failures once, on the next resolver in rotation.
//	    diglet.WithMaxRetries(1),
//
//	    // Run up to 50 queries concurrently; output order stays stable.
//	    diglet.WithWorkers(50),
//
//	    // Cap the overall query rate.
//	    diglet.WithRateLimit(200),
//	)
//
// Available options:
//
//   - [WithResolvers]   — resolver addresses for the default round-robin pool
//   - [WithStrategy]    — custom rotation strategy ([Random], or your own)
//   - [WithRecordTypes] — record types per domain (default: A, TXT, MX)
//   - [WithTimeout]     — per-query timeout (default: 5s)
//   - [WithMaxRetries]  — extra attempts on transient failures (default: 0)
//   - [WithWorkers]     — concurrent query workers (default: 1, sequential)
//   - [WithRateLimit]   — overall queries-per-second cap (default: unlimited)
//   - [WithCache]       — in-run outcome cache for repeated inputs (default: off)
//   - [WithDNSClient]   — custom client for TCP, DNS-over-TLS, or custom dialers
//   - [WithEDNS0Size]   — EDNS0 UDP buffer size (default: 1232)
//
// # Rotation
//
// The pool hands out resolvers at query granularity: a run over two
// domains and three record types draws six resolvers. [RoundRobin]
// advances an atomic cursor, so concurrent workers never observe the
// same cursor position and the rotation order is reproducible across
// runs with a fresh pool. Alternative strategies only need to implement
// [Strategy]; [Random] ships as an example.
//
// # Exports
//
// [WriteText], [WriteCSV], [WriteJSON] and [WriteXLSX] render a
// [ResultSet] for humans, pipelines or spreadsheets. All of them keep
// failure classifications visibly distinct from empty-but-successful
// answers.
package diglet
