// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// RecordType identifies a DNS resource record category. The set of
// supported types is closed; anything else parses to [TypeUnsupported]
// and is surfaced as an [StatusUnsupported] outcome rather than a
// runtime fault.
type RecordType uint16

// Supported record types, plus the sentinel for everything else.
const (
	TypeUnsupported RecordType = RecordType(dns.TypeNone)

	TypeA     RecordType = RecordType(dns.TypeA)
	TypeAAAA  RecordType = RecordType(dns.TypeAAAA)
	TypeCNAME RecordType = RecordType(dns.TypeCNAME)
	TypeMX    RecordType = RecordType(dns.TypeMX)
	TypeNS    RecordType = RecordType(dns.TypeNS)
	TypeTXT   RecordType = RecordType(dns.TypeTXT)
	TypeSOA   RecordType = RecordType(dns.TypeSOA)
	TypePTR   RecordType = RecordType(dns.TypePTR)
	TypeSRV   RecordType = RecordType(dns.TypeSRV)
)

// ParseRecordType converts a textual record type (e.g. "A", "mx",
// " TXT ") to its [RecordType]. Unknown or empty input yields
// [TypeUnsupported]; it never fails.
func ParseRecordType(s string) RecordType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return TypeA
	case "AAAA":
		return TypeAAAA
	case "CNAME":
		return TypeCNAME
	case "MX":
		return TypeMX
	case "NS":
		return TypeNS
	case "TXT":
		return TypeTXT
	case "SOA":
		return TypeSOA
	case "PTR":
		return TypePTR
	case "SRV":
		return TypeSRV
	default:
		return TypeUnsupported
	}
}

// ParseRecordTypes converts a comma-separated list of record types
// (e.g. "A,TXT,MX"). Unknown entries are preserved as
// [TypeUnsupported] so the caller sees them classified in the results
// instead of silently dropped.
func ParseRecordTypes(s string) []RecordType {
	parts := strings.Split(s, ",")
	types := make([]RecordType, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		types = append(types, ParseRecordType(part))
	}
	return types
}

// String returns the textual name of the record type, or "UNSUPPORTED"
// for the sentinel.
func (rt RecordType) String() string {
	if rt == TypeUnsupported {
		return "UNSUPPORTED"
	}
	if name, ok := dns.TypeToString[uint16(rt)]; ok {
		return name
	}
	return "UNSUPPORTED"
}

// Supported reports whether the executor knows how to decode answers
// for this record type.
func (rt RecordType) Supported() bool {
	_, ok := decoders[uint16(rt)]
	return ok
}

// DefaultRecordTypes returns the record types queried when none are
// configured: A, TXT and MX.
func DefaultRecordTypes() []RecordType {
	return []RecordType{TypeA, TypeTXT, TypeMX}
}

// decoders maps each supported record type to a function rendering a
// resource record of that type as a human-readable value. The map
// doubles as the closed set of supported types.
var decoders = map[uint16]func(dns.RR) string{
	dns.TypeA:     func(rr dns.RR) string { return rr.(*dns.A).A.String() },
	dns.TypeAAAA:  func(rr dns.RR) string { return rr.(*dns.AAAA).AAAA.String() },
	dns.TypeCNAME: func(rr dns.RR) string { return rr.(*dns.CNAME).Target },
	dns.TypeNS:    func(rr dns.RR) string { return rr.(*dns.NS).Ns },
	dns.TypePTR:   func(rr dns.RR) string { return rr.(*dns.PTR).Ptr },
	dns.TypeTXT:   func(rr dns.RR) string { return strings.Join(rr.(*dns.TXT).Txt, " ") },
	dns.TypeMX: func(rr dns.RR) string {
		mx := rr.(*dns.MX)
		return fmt.Sprintf("%d %s", mx.Preference, mx.Mx)
	},
	dns.TypeSOA: func(rr dns.RR) string {
		soa := rr.(*dns.SOA)
		return fmt.Sprintf("%s %s %d %d %d %d %d",
			soa.Ns, soa.Mbox, soa.Serial, soa.Refresh, soa.Retry, soa.Expire, soa.Minttl)
	},
	dns.TypeSRV: func(rr dns.RR) string {
		srv := rr.(*dns.SRV)
		return fmt.Sprintf("%d %d %d %s", srv.Priority, srv.Weight, srv.Port, srv.Target)
	},
}

// decodeRR renders a single resource record as a human-readable value.
// Records of a type outside the decoder table (a CNAME answer to an A
// query is in the table; an RRSIG is not) fall back to the record's
// RDATA text.
func decodeRR(rr dns.RR) string {
	if decode, ok := decoders[rr.Header().Rrtype]; ok {
		return decode(rr)
	}
	// rr.String() prepends the header; strip it to keep only the RDATA.
	return strings.TrimSpace(strings.TrimPrefix(rr.String(), rr.Header().String()))
}
