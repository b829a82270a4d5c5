// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet

import (
	"math/rand/v2"
	"strings"
	"sync/atomic"
)

// Resolver is the address of a DNS server, either an IP literal or a
// host string, optionally with a port. The default port 53 is appended
// at query time when none is given. Resolvers are immutable once loaded
// into a pool.
type Resolver string

// Strategy selects which resolver serves the next query. A [Digger]
// calls Next exactly once per (domain, record type) pair, so rotation
// happens at query granularity.
//
// Implementations must be safe for concurrent use; a single Strategy is
// shared by all workers of a concurrent run. [RoundRobin] is the
// default implementation, [Random] an alternative. Weighted or
// latency-aware strategies can be plugged in without changing callers.
type Strategy interface {
	Next() Resolver
}

// RoundRobin cycles through a fixed resolver list in insertion order,
// wrapping back to the first resolver after the last. Duplicates in the
// input list are preserved.
type RoundRobin struct {
	resolvers []Resolver
	cursor    atomic.Uint64
}

// NewRoundRobin builds a round-robin pool from the given resolver
// addresses. It returns [ErrEmptyPool] if the list is empty, so callers
// can abort before issuing any query.
func NewRoundRobin(addrs []string) (*RoundRobin, error) {
	resolvers, err := loadResolvers(addrs)
	if err != nil {
		return nil, err
	}
	return &RoundRobin{resolvers: resolvers}, nil
}

// Next returns the next resolver in rotation order. It is safe to call
// from multiple goroutines: the cursor advance is a single atomic step,
// so no two concurrent callers observe the same cursor position.
func (p *RoundRobin) Next() Resolver {
	n := p.cursor.Add(1) - 1
	return p.resolvers[n%uint64(len(p.resolvers))]
}

// Resolvers returns a copy of the pool's resolver list in load order.
func (p *RoundRobin) Resolvers() []Resolver {
	resolvers := make([]Resolver, len(p.resolvers))
	copy(resolvers, p.resolvers)
	return resolvers
}

// Len returns the number of resolvers in the pool.
func (p *RoundRobin) Len() int { return len(p.resolvers) }

// Random picks a uniformly random resolver from a fixed list on every
// call. It satisfies the same [Strategy] contract as [RoundRobin] and
// exists mainly to demonstrate that rotation is pluggable.
type Random struct {
	resolvers []Resolver
}

// NewRandom builds a random-selection pool from the given resolver
// addresses. It returns [ErrEmptyPool] if the list is empty.
func NewRandom(addrs []string) (*Random, error) {
	resolvers, err := loadResolvers(addrs)
	if err != nil {
		return nil, err
	}
	return &Random{resolvers: resolvers}, nil
}

// Next returns a random resolver. Safe for concurrent use.
func (p *Random) Next() Resolver {
	return p.resolvers[rand.IntN(len(p.resolvers))]
}

// Resolvers returns a copy of the pool's resolver list in load order.
func (p *Random) Resolvers() []Resolver {
	resolvers := make([]Resolver, len(p.resolvers))
	copy(resolvers, p.resolvers)
	return resolvers
}

// Len returns the number of resolvers in the pool.
func (p *Random) Len() int { return len(p.resolvers) }

// loadResolvers trims the given addresses into an immutable resolver
// slice, rejecting an empty list up front.
func loadResolvers(addrs []string) ([]Resolver, error) {
	if len(addrs) == 0 {
		return nil, ErrEmptyPool
	}
	resolvers := make([]Resolver, len(addrs))
	for i, addr := range addrs {
		resolvers[i] = Resolver(strings.TrimSpace(addr))
	}
	return resolvers, nil
}
