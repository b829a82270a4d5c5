// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet

import (
	"context"
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// executeQuery sends exactly one DNS query for (domain, rtype) to the
// given resolver and classifies the response. It performs no retries;
// retry policy lives in the orchestrator. Every failure mode is
// represented as an [Outcome], never as a fault past this contract.
func executeQuery(ctx context.Context, client *dns.Client, domain string, rtype RecordType, resolver Resolver, edns0Size uint16) Outcome {
	if !rtype.Supported() {
		return Outcome{
			Status:   StatusUnsupported,
			Resolver: resolver,
			Err:      fmt.Errorf("record type %d is not supported", uint16(rtype)),
		}
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), uint16(rtype))
	msg.RecursionDesired = true
	if edns0Size > 0 {
		msg.SetEdns0(edns0Size, false)
	}

	resp, rtt, err := client.ExchangeContext(ctx, msg, resolverAddr(resolver))
	if err != nil {
		// Transport errors against unreachable resolvers are lumped in
		// with deadline expiry: from the caller's point of view both
		// mean "no answer within the bound".
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return Outcome{
			Status:   StatusTimeout,
			Resolver: resolver,
			Err:      err,
		}
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
		records := make([]string, 0, len(resp.Answer))
		for _, rr := range resp.Answer {
			records = append(records, decodeRR(rr))
		}
		return Outcome{
			Status:   StatusSuccess,
			Records:  records,
			Resolver: resolver,
			Rtt:      rtt,
		}
	case dns.RcodeNameError:
		return Outcome{Status: StatusNameError, Resolver: resolver, Rtt: rtt}
	case dns.RcodeRefused, dns.RcodeNotImplemented:
		return Outcome{Status: StatusRefused, Resolver: resolver, Rtt: rtt}
	default:
		// SERVFAIL proper, plus the odd rcodes (FORMERR, NOTAUTH, ...)
		// that all mean the server could not process the query.
		return Outcome{
			Status:   StatusServerFailure,
			Resolver: resolver,
			Rtt:      rtt,
			Err:      fmt.Errorf("resolver returned rcode %s", dns.RcodeToString[resp.Rcode]),
		}
	}
}

// resolverAddr ensures the resolver address carries a port, defaulting
// to 53.
func resolverAddr(resolver Resolver) string {
	addr := string(resolver)
	if !strings.Contains(addr, ":") {
		addr += ":53"
	}
	return addr
}
