// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package dnstest provides a configurable in-process DNS server
// simulator for tests, so query classification can be exercised without
// touching the network.
package dnstest

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/miekg/dns"
)

// Response defines how the server answers a specific question.
type Response struct {
	// Rcode is the reply code. Defaults to RcodeSuccess.
	Rcode int

	// Answer holds the records placed in the answer section.
	Answer []dns.RR

	// Drop causes the server to ignore the request, simulating a
	// timeout.
	Drop bool

	// Delay adds a pause before answering.
	Delay time.Duration
}

// Server simulates a DNS resolver on a loopback UDP socket. Questions
// without a configured [Response] are answered with NXDOMAIN.
type Server struct {
	// Addr is the "ip:port" the server listens on.
	Addr string

	mu        sync.Mutex
	responses map[string]Response
	queries   int
	srv       *dns.Server
}

// NewServer starts a simulator on an ephemeral loopback port serving
// the given responses, keyed by [Key].
func NewServer(responses map[string]Response) (*Server, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		return nil, err
	}

	s := &Server{
		Addr:      conn.LocalAddr().String(),
		responses: responses,
	}
	s.srv = &dns.Server{PacketConn: conn, Handler: dns.HandlerFunc(s.handle)}
	go s.srv.ActivateAndServe()

	return s, nil
}

// Close shuts the simulator down.
func (s *Server) Close() {
	_ = s.srv.Shutdown()
}

// Queries returns how many questions the server has received so far.
func (s *Server) Queries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries
}

// SetResponse adds or replaces the response for a question at runtime.
func (s *Server) SetResponse(key string, resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.responses == nil {
		s.responses = make(map[string]Response)
	}
	s.responses[key] = resp
}

func (s *Server) handle(w dns.ResponseWriter, req *dns.Msg) {
	if len(req.Question) == 0 {
		_ = w.Close()
		return
	}
	q := req.Question[0]

	s.mu.Lock()
	s.queries++
	resp, ok := s.responses[Key(q.Name, q.Qtype)]
	s.mu.Unlock()

	if !ok {
		m := new(dns.Msg)
		m.SetRcode(req, dns.RcodeNameError)
		_ = w.WriteMsg(m)
		return
	}

	if resp.Delay > 0 {
		time.Sleep(resp.Delay)
	}
	if resp.Drop {
		return
	}

	m := new(dns.Msg)
	m.SetReply(req)
	if resp.Rcode != 0 {
		m.Rcode = resp.Rcode
	}
	m.Answer = append(m.Answer, resp.Answer...)
	_ = w.WriteMsg(m)
}

// Key returns the lookup key for a question name and type.
func Key(name string, qtype uint16) string {
	return dns.CanonicalName(name) + "/" + dns.TypeToString[qtype]
}

// RR parses a resource record in zone-file syntax, panicking on error.
// It keeps test fixtures short:
//
//	dnstest.RR("example.com. 60 IN A 192.0.2.1")
func RR(s string) dns.RR {
	rr, err := dns.NewRR(s)
	if err != nil {
		panic(fmt.Sprintf("dnstest: bad record %q: %v", s, err))
	}
	return rr
}
