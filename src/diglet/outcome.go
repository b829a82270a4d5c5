// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet

import (
	"strings"
	"time"
)

// Status classifies the outcome of a single DNS query. Every query
// produces exactly one Status; failures are data, never faults.
type Status int

const (
	// StatusSuccess means the resolver answered. The answer list may be
	// empty: a domain with no MX records is still a success.
	StatusSuccess Status = iota

	// StatusNameError means the resolver reported NXDOMAIN: the name
	// does not exist. Distinct from an empty answer list.
	StatusNameError

	// StatusServerFailure means the resolver reported an internal
	// error (SERVFAIL).
	StatusServerFailure

	// StatusRefused means the resolver declined to answer.
	StatusRefused

	// StatusTimeout means no response arrived within the query bound,
	// including transport-level failures against unreachable resolvers.
	StatusTimeout

	// StatusUnsupported means the record type is not one the executor
	// knows how to decode. No query is sent.
	StatusUnsupported
)

// String returns the DNS-flavored name of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "OK"
	case StatusNameError:
		return "NXDOMAIN"
	case StatusServerFailure:
		return "SERVFAIL"
	case StatusRefused:
		return "REFUSED"
	case StatusTimeout:
		return "TIMEOUT"
	case StatusUnsupported:
		return "UNSUPPORTED"
	default:
		return "UNKNOWN"
	}
}

// Outcome is the classified result of one DNS query. Records is
// populated only when Status is [StatusSuccess]; for every other status
// Err may carry the underlying transport or classification detail.
type Outcome struct {
	// Status is the classification of this query.
	Status Status

	// Records holds the decoded answer values in the order returned by
	// the resolver. Only set on success, and may be empty.
	Records []string

	// Resolver is the address of the DNS server that served (or failed)
	// this query.
	Resolver Resolver

	// Rtt is the round-trip time of the query, when a response arrived.
	Rtt time.Duration

	// Err is the underlying error detail for failure outcomes. It is
	// never set on success.
	Err error
}

// OK reports whether the query succeeded, regardless of whether any
// records were returned.
func (o Outcome) OK() bool { return o.Status == StatusSuccess }

// String renders the outcome for display: the joined record list on
// success, or the status name otherwise.
func (o Outcome) String() string {
	if o.OK() {
		return strings.Join(o.Records, ", ")
	}
	return o.Status.String()
}

// Lookup pairs a record type with its query outcome.
type Lookup struct {
	Type    RecordType
	Outcome Outcome
}

// DomainResult collects the outcomes of all configured record types for
// one domain, in the configured type order.
type DomainResult struct {
	// Domain is the input domain, as given by the caller.
	Domain string

	// Lookups holds one entry per configured record type, in
	// configuration order.
	Lookups []Lookup
}

// Outcome returns the outcome for the given record type and whether
// that type was part of the run.
func (r DomainResult) Outcome(rt RecordType) (Outcome, bool) {
	for _, l := range r.Lookups {
		if l.Type == rt {
			return l.Outcome, true
		}
	}
	return Outcome{}, false
}

// ResultSet is the ordered collection of per-domain results, one entry
// per input domain in input order.
type ResultSet []DomainResult

// Types returns the record-type order of the run, taken from the first
// result. It is empty for an empty set.
func (rs ResultSet) Types() []RecordType {
	if len(rs) == 0 {
		return nil
	}
	types := make([]RecordType, len(rs[0].Lookups))
	for i, l := range rs[0].Lookups {
		types[i] = l.Type
	}
	return types
}
