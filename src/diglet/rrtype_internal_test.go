// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet

import (
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRR(t *testing.T, s string) dns.RR {
	t.Helper()
	rr, err := dns.NewRR(s)
	require.NoError(t, err, "bad test record %q", s)
	return rr
}

func TestDecodeRR(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   string
	}{
		{"A", "example.com. 60 IN A 192.0.2.1", "192.0.2.1"},
		{"AAAA", "example.com. 60 IN AAAA 2001:db8::1", "2001:db8::1"},
		{"CNAME", "www.example.com. 60 IN CNAME example.com.", "example.com."},
		{"MX", "example.com. 60 IN MX 10 mail.example.com.", "10 mail.example.com."},
		{"NS", "example.com. 60 IN NS ns1.example.com.", "ns1.example.com."},
		{"TXT", `example.com. 60 IN TXT "v=spf1" "-all"`, "v=spf1 -all"},
		{"PTR", "1.2.0.192.in-addr.arpa. 60 IN PTR example.com.", "example.com."},
		{"SRV", "_sip._tcp.example.com. 60 IN SRV 10 20 5060 sip.example.com.", "10 20 5060 sip.example.com."},
		{
			"SOA",
			"example.com. 60 IN SOA ns1.example.com. hostmaster.example.com. 2024010101 7200 3600 1209600 3600",
			"ns1.example.com. hostmaster.example.com. 2024010101 7200 3600 1209600 3600",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeRR(mustRR(t, tt.record)))
		})
	}
}

func TestDecodeRROutsideTableFallsBack(t *testing.T) {
	// CAA is not in the decoder table; its RDATA text is used instead.
	got := decodeRR(mustRR(t, `example.com. 60 IN CAA 0 issue "letsencrypt.org"`))
	assert.Contains(t, got, "letsencrypt.org")
	assert.NotContains(t, got, "example.com.", "header must be stripped")
}
