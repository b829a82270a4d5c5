// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjt263/diglet/src/diglet"
	"github.com/tjt263/diglet/src/diglet/dnstest"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadList(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "domains.txt", `
example.com
# a comment
  example.org

example.com
`)

	entries, err := loadList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "example.org", "example.com"}, entries,
		"order and duplicates must be preserved, comments and blanks skipped")

	_, err = loadList(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "diglet.yaml", `
domains: my-domains.txt
types: A,AAAA
timeout: 2s
workers: 20
format: csv
`)

	cfg := defaultConfig()
	require.NoError(t, loadConfigFile(path, &cfg))

	assert.Equal(t, "my-domains.txt", cfg.Domains)
	assert.Equal(t, "A,AAAA", cfg.Types)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 20, cfg.Workers)
	assert.Equal(t, "csv", cfg.Format)
	// Untouched keys keep their defaults.
	assert.Equal(t, "resolvers.txt", cfg.Resolvers)
}

func TestLoadConfigFileRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "diglet.yaml", "domanis: typo.txt\n")

	cfg := defaultConfig()
	assert.Error(t, loadConfigFile(path, &cfg))
}

func TestRunEndToEnd(t *testing.T) {
	srv, err := dnstest.NewServer(map[string]dnstest.Response{
		dnstest.Key("example.com.", dns.TypeA): {
			Answer: []dns.RR{dnstest.RR("example.com. 60 IN A 192.0.2.1")},
		},
	})
	require.NoError(t, err)
	defer srv.Close()

	dir := t.TempDir()
	domains := writeFile(t, dir, "domains.txt", "example.com\n")
	resolvers := writeFile(t, dir, "resolvers.txt", srv.Addr+"\n")

	cfg := defaultConfig()
	cfg.Domains = domains
	cfg.Resolvers = resolvers
	cfg.Types = "A"
	cfg.Timeout = time.Second

	var buf bytes.Buffer
	require.NoError(t, run(t.Context(), cfg, &buf))
	assert.Contains(t, buf.String(), "example.com")
	assert.Contains(t, buf.String(), "192.0.2.1")
}

func TestRunEmptyResolverFileAbortsBeforeQuerying(t *testing.T) {
	dir := t.TempDir()
	domains := writeFile(t, dir, "domains.txt", "example.com\n")
	resolvers := writeFile(t, dir, "resolvers.txt", "# no resolvers\n")

	cfg := defaultConfig()
	cfg.Domains = domains
	cfg.Resolvers = resolvers

	var buf bytes.Buffer
	err := run(t.Context(), cfg, &buf)
	assert.ErrorIs(t, err, diglet.ErrEmptyPool)
	assert.Zero(t, buf.Len(), "nothing may be rendered for a fatal pre-run error")
}

func TestRunUnknownStrategy(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig()
	cfg.Domains = writeFile(t, dir, "domains.txt", "example.com\n")
	cfg.Resolvers = writeFile(t, dir, "resolvers.txt", "192.0.2.53\n")
	cfg.Strategy = "latency-aware"

	var buf bytes.Buffer
	assert.Error(t, run(t.Context(), cfg, &buf))
}
