// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{"lowercase", "Example.COM", "example.com"},
		{"trim", "  example.com  ", "example.com"},
		{"idn to punycode", "bücher.example", "xn--bcher-kva.example"},
		{"underscore label kept", "_dmarc.example.com", "_dmarc.example.com"},
		{"already ascii", "sub.example.co.uk", "sub.example.co.uk"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDomain(tt.domain))
		})
	}
}
