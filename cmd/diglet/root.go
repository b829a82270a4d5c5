// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tjt263/diglet/src/diglet"
)

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "diglet",
		Short: "diglet resolves domain lists against a rotating pool of DNS resolvers",
		Long: `diglet reads a list of domains and a list of DNS resolvers, queries a
configurable set of record types per domain while rotating through the
resolver pool one query at a time, and reports a classified outcome for
every (domain, type) pair. Failures (NXDOMAIN, SERVFAIL, REFUSED,
timeouts) are recorded next to the answers; they never abort the batch.`,
		Version:      "1.0.0",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				fileCfg := defaultConfig()
				if err := loadConfigFile(configPath, &fileCfg); err != nil {
					return err
				}
				// Flags given on the command line win over the file.
				mergeUnchanged(cmd, &cfg, fileCfg)
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	f := rootCmd.Flags()
	f.StringVarP(&cfg.Domains, "domains", "d", cfg.Domains, "path to domains file, one domain per line")
	f.StringVarP(&cfg.Resolvers, "resolvers", "r", cfg.Resolvers, "path to resolvers file, one address per line")
	f.StringVarP(&cfg.Types, "types", "t", cfg.Types, "comma-separated DNS record types to fetch (e.g. A,MX,TXT)")
	f.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout per DNS query")
	f.IntVar(&cfg.Retries, "retries", cfg.Retries, "extra attempts per query on transient failures")
	f.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "number of concurrent query workers")
	f.IntVar(&cfg.QPS, "qps", cfg.QPS, "overall queries-per-second cap (0 = unlimited)")
	f.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "resolver rotation strategy: round-robin or random")
	f.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: text, csv, json or xlsx")
	f.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output file path (default: stdout)")
	f.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "suppress output to stdout")
	f.StringVar(&configPath, "config", "", "path to YAML config file")

	return rootCmd
}

// mergeUnchanged copies file-config values into cfg for every flag the
// user did not set explicitly.
func mergeUnchanged(cmd *cobra.Command, cfg *config, fileCfg config) {
	flags := cmd.Flags()
	if !flags.Changed("domains") {
		cfg.Domains = fileCfg.Domains
	}
	if !flags.Changed("resolvers") {
		cfg.Resolvers = fileCfg.Resolvers
	}
	if !flags.Changed("types") {
		cfg.Types = fileCfg.Types
	}
	if !flags.Changed("timeout") {
		cfg.Timeout = fileCfg.Timeout
	}
	if !flags.Changed("retries") {
		cfg.Retries = fileCfg.Retries
	}
	if !flags.Changed("workers") {
		cfg.Workers = fileCfg.Workers
	}
	if !flags.Changed("qps") {
		cfg.QPS = fileCfg.QPS
	}
	if !flags.Changed("strategy") {
		cfg.Strategy = fileCfg.Strategy
	}
	if !flags.Changed("format") {
		cfg.Format = fileCfg.Format
	}
	if !flags.Changed("output") {
		cfg.Output = fileCfg.Output
	}
	if !flags.Changed("quiet") {
		cfg.Quiet = fileCfg.Quiet
	}
}

// run wires the configuration into a Digger, executes the batch and
// renders the result set.
func run(ctx context.Context, cfg config, stdout io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	domains, err := loadList(cfg.Domains)
	if err != nil {
		return fmt.Errorf("load domains: %w", err)
	}
	resolvers, err := loadList(cfg.Resolvers)
	if err != nil {
		return fmt.Errorf("load resolvers: %w", err)
	}

	opts := []diglet.Option{
		diglet.WithRecordTypes(diglet.ParseRecordTypes(cfg.Types)...),
		diglet.WithTimeout(cfg.Timeout),
		diglet.WithMaxRetries(cfg.Retries),
		diglet.WithWorkers(cfg.Workers),
	}

	switch cfg.Strategy {
	case "", "round-robin":
		opts = append(opts, diglet.WithResolvers(resolvers...))
	case "random":
		pool, err := diglet.NewRandom(resolvers)
		if err != nil {
			return err
		}
		opts = append(opts, diglet.WithStrategy(pool))
	default:
		return fmt.Errorf("unknown strategy %q", cfg.Strategy)
	}

	if cfg.QPS > 0 {
		opts = append(opts, diglet.WithRateLimit(cfg.QPS))
	}

	// An empty resolver file surfaces here, before any query is sent.
	d, err := diglet.New(opts...)
	if err != nil {
		return err
	}

	results, runErr := d.Dig(ctx, domains...)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	if runErr != nil {
		log.Println("interrupted, writing partial results")
	}

	out := stdout
	if cfg.Output != "" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		out = file
	} else if cfg.Quiet {
		return runErr
	}

	if err := diglet.Write(out, cfg.Format, results); err != nil {
		return err
	}
	return runErr
}

// loadList reads one entry per line, trimming whitespace and skipping
// blank lines and '#' comments. Order and duplicates are preserved.
func loadList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
