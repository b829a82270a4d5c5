// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet

import (
	"strings"

	"golang.org/x/net/idna"
)

// normalizeDomain lowercases and trims a domain name and converts
// internationalized names to their ASCII (punycode) form. No syntactic
// validation happens here: a malformed name goes out on the wire as-is
// and comes back as a query outcome, not an upfront rejection.
func normalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if ascii, err := idna.ToASCII(domain); err == nil && ascii != "" {
		return ascii
	}
	return domain
}
