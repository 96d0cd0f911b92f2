// lorecheck runs the consistency pipeline once and writes the report as
// JSON. Exit status is 0 when no issue is high or critical severity, 1
// otherwise, so the binary slots into CI and pre-publish hooks.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/worldcrafter/lorecheck/internal/config"
	"github.com/worldcrafter/lorecheck/internal/core/checks"
	"github.com/worldcrafter/lorecheck/internal/core/oracle"
	"github.com/worldcrafter/lorecheck/internal/core/summary"
	"github.com/worldcrafter/lorecheck/internal/llm"
	"github.com/worldcrafter/lorecheck/internal/store"
)

func main() {
	cfgPath := flag.String("config", "config/config.toml", "path to TOML config")
	snapshotPath := flag.String("snapshot", "", "path to a JSON snapshot export")
	worldID := flag.String("world", "", "world id to load from Memgraph instead of a snapshot file")
	outPath := flag.String("out", "", "write the report to this file instead of stdout")
	summarize := flag.Bool("summarize", false, "print an LLM prose digest of the report to stderr")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadOrDefault(*cfgPath)
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid oracle configuration: %v", err)
	}

	ctx := context.Background()
	llmClient, _, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	var source store.SnapshotSource
	switch {
	case *snapshotPath != "":
		source = store.FileSource{Path: *snapshotPath}
	case *worldID != "":
		ms, err := store.NewMemgraphSource(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, *worldID)
		if err != nil {
			log.Fatalf("Failed to connect to Memgraph: %v", err)
		}
		defer ms.Close(ctx)
		source = ms
	default:
		log.Fatal("Either -snapshot or -world is required")
	}

	snap, err := source.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	checker := checks.NewChecker(oracle.New(llmClient), cfg.Checks)
	report := checker.Run(ctx, snap)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to serialize report: %v", err)
	}
	if *outPath != "" {
		if err := os.WriteFile(*outPath, append(data, '\n'), 0o644); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
	} else {
		fmt.Println(string(data))
	}

	if *summarize {
		summarizer := summary.NewReportSummarizer(llmClient, cfg.Summary)
		digest, err := summarizer.Summarize(ctx, report)
		if err != nil {
			log.Printf("Warning: failed to summarize report: %v", err)
			digest = fmt.Sprintf("%d issues found.", report.TotalIssues)
		}
		fmt.Fprintln(os.Stderr, digest)
	}

	if !report.Passed() {
		os.Exit(1)
	}
}
