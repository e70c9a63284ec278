// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harsh1d/research-paper-analyzer/internal/analyze"
	"github.com/harsh1d/research-paper-analyzer/internal/cache"
	"github.com/harsh1d/research-paper-analyzer/internal/capability"
	"github.com/harsh1d/research-paper-analyzer/internal/capability/inference"
	"github.com/harsh1d/research-paper-analyzer/internal/capability/lexical"
	"github.com/harsh1d/research-paper-analyzer/internal/report"
	"github.com/harsh1d/research-paper-analyzer/internal/textload"
	"github.com/harsh1d/research-paper-analyzer/pkg/types"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "paper-analyzer/0.1"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run all analysis tasks over a paper and write a report",
	Long: `Analyze loads text from a txt or markdown file, runs every analysis task
over it, and writes a YAML or JSON report including the derived quality
score. Task results are cached by content fingerprint, so re-analyzing
unchanged text is cheap until entries expire.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("format", "", "report format: yaml or json (default yaml)")
	analyzeCmd.Flags().String("output", "reports", "directory for written reports")
	analyzeCmd.Flags().Duration("timeout", 0, "per-task deadline (default 10s)")
	analyzeCmd.Flags().Int("workers", 0, "task worker pool size (default 4)")
	analyzeCmd.Flags().Bool("no-cache", false, "disable the result cache")
	analyzeCmd.Flags().String("cache-dir", "cache", "directory for the result cache")
	analyzeCmd.Flags().Duration("cache-ttl", 0, "cache entry lifetime (default 24h)")
	analyzeCmd.Flags().String("backend", "lexical", "capability backend: lexical or inference")
	analyzeCmd.Flags().String("endpoint", "", "inference endpoint base URL")
	analyzeCmd.Flags().String("api-key", "", "inference API key (default: .secrets/inference-api-key)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	loaded, err := textload.LoadFile(args[0], textload.Plain{})
	if err != nil {
		return err
	}
	if !loaded.Success {
		return fmt.Errorf("extracting text: %s", loaded.Error)
	}

	doc, err := analyze.NewDocument(loaded.Text)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	caps, err := buildCapabilities(cmd)
	if err != nil {
		return err
	}

	store, err := buildStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	timeout, _ := cmd.Flags().GetDuration("timeout")
	workers, _ := cmd.Flags().GetInt("workers")
	if workers == 0 {
		workers = viper.GetInt("orchestrator.workers")
	}
	orch := analyze.NewOrchestrator(caps, store, types.OrchestratorConfig{
		Workers:     workers,
		TaskTimeout: timeout,
	}, logger)

	start := time.Now()
	record := orch.Run(cmd.Context(), doc)
	rep := report.New(args[0], record, time.Since(start))

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = viper.GetString("report.format")
	}
	outputDir, _ := cmd.Flags().GetString("output")

	path, err := report.Write(rep, outputDir, format)
	if err != nil {
		return err
	}

	fmt.Printf("Report %s: %s (%s, %.2f overall)\n",
		rep.ReportID, path, rep.Quality.Rating, rep.Quality.OverallScore)
	for _, task := range types.AllTasks() {
		if outcome := record.Outcomes[task]; outcome.Degraded() {
			fmt.Printf("  degraded: %s (%s) %s\n", task, outcome.Status, outcome.Reason)
		}
	}
	return nil
}

func buildCapabilities(cmd *cobra.Command) (capability.Set, error) {
	backend, _ := cmd.Flags().GetString("backend")
	switch types.CapabilityBackend(backend) {
	case types.BackendLexical, "":
		return lexical.Set(), nil
	case types.BackendInference:
		endpoint, _ := cmd.Flags().GetString("endpoint")
		if endpoint == "" {
			endpoint = viper.GetString("capability.endpoint")
		}
		apiKey, _ := cmd.Flags().GetString("api-key")
		client, err := inference.New(types.CapabilityConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   defaultHTTPTimeout,
				UserAgent: defaultUserAgent,
			},
			Backend:  types.BackendInference,
			Endpoint: endpoint,
			APIKey:   secretDefault("inference-api-key", apiKey),
		}, logger)
		if err != nil {
			return capability.Set{}, err
		}
		return client.Set(), nil
	default:
		return capability.Set{}, fmt.Errorf("unknown backend %q (want lexical or inference)", backend)
	}
}

func buildStore(cmd *cobra.Command) (cache.Store, error) {
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		return cache.Disabled{}, nil
	}
	dir, _ := cmd.Flags().GetString("cache-dir")
	ttl, _ := cmd.Flags().GetDuration("cache-ttl")
	if ttl == 0 {
		ttl = viper.GetDuration("cache.ttl")
	}
	return cache.Open(dir, ttl, logger)
}
