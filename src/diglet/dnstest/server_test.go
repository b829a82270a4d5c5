// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dnstest_test

import (
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjt263/diglet/src/diglet/dnstest"
)

func exchange(t *testing.T, addr, name string, qtype uint16) (*dns.Msg, error) {
	t.Helper()
	client := &dns.Client{Timeout: 500 * time.Millisecond}
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	resp, _, err := client.Exchange(msg, addr)
	return resp, err
}

func TestServerAnswersConfiguredQuestion(t *testing.T) {
	srv, err := dnstest.NewServer(map[string]dnstest.Response{
		dnstest.Key("example.com.", dns.TypeA): {
			Answer: []dns.RR{dnstest.RR("example.com. 60 IN A 192.0.2.1")},
		},
	})
	require.NoError(t, err)
	defer srv.Close()

	resp, err := exchange(t, srv.Addr, "example.com", dns.TypeA)
	require.NoError(t, err)
	assert.Equal(t, dns.RcodeSuccess, resp.Rcode)
	require.Len(t, resp.Answer, 1)
	assert.Equal(t, 1, srv.Queries())
}

func TestServerDefaultsToNameError(t *testing.T) {
	srv, err := dnstest.NewServer(nil)
	require.NoError(t, err)
	defer srv.Close()

	resp, err := exchange(t, srv.Addr, "unknown.test", dns.TypeA)
	require.NoError(t, err)
	assert.Equal(t, dns.RcodeNameError, resp.Rcode)
}

func TestServerReturnsConfiguredRcode(t *testing.T) {
	srv, err := dnstest.NewServer(map[string]dnstest.Response{
		dnstest.Key("broken.test.", dns.TypeA): {Rcode: dns.RcodeServerFailure},
	})
	require.NoError(t, err)
	defer srv.Close()

	resp, err := exchange(t, srv.Addr, "broken.test", dns.TypeA)
	require.NoError(t, err)
	assert.Equal(t, dns.RcodeServerFailure, resp.Rcode)
}

func TestServerDropSimulatesTimeout(t *testing.T) {
	srv, err := dnstest.NewServer(map[string]dnstest.Response{
		dnstest.Key("silent.test.", dns.TypeA): {Drop: true},
	})
	require.NoError(t, err)
	defer srv.Close()

	_, err = exchange(t, srv.Addr, "silent.test", dns.TypeA)
	assert.Error(t, err, "dropped request must surface as a client-side timeout")
}

func TestServerSetResponse(t *testing.T) {
	srv, err := dnstest.NewServer(nil)
	require.NoError(t, err)
	defer srv.Close()

	srv.SetResponse(dnstest.Key("late.test.", dns.TypeA), dnstest.Response{
		Answer: []dns.RR{dnstest.RR("late.test. 60 IN A 192.0.2.9")},
	})

	resp, err := exchange(t, srv.Addr, "late.test", dns.TypeA)
	require.NoError(t, err)
	assert.Equal(t, dns.RcodeSuccess, resp.Rcode)
	require.Len(t, resp.Answer, 1)
}

func TestRRPanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() { dnstest.RR("not a record") })
}
