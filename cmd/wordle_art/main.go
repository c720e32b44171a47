package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/wordart/wordle-art/internal/aggregator"
	"github.com/wordart/wordle-art/internal/config"
	outputio "github.com/wordart/wordle-art/internal/io"
	"github.com/wordart/wordle-art/internal/matcher"
	"github.com/wordart/wordle-art/internal/pattern"
	"github.com/wordart/wordle-art/internal/render"
	"github.com/wordart/wordle-art/internal/search"
)

func main() {
	// Parse command line flags
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Validate files exist
	if err := cfg.ValidateFiles(); err != nil {
		log.Fatalf("File validation error: %v", err)
	}

	solution := strings.ToLower(cfg.Solution)
	if !matcher.IsWord(solution) {
		log.Fatalf("Solution must be %d letters a-z, got %q", pattern.WordLength, cfg.Solution)
	}

	if cfg.Verbose {
		fmt.Println("🎨 Starting Wordle Art...")
		fmt.Printf("  Solution: %s\n", solution)
		fmt.Printf("  Format: %s\n", cfg.Format)
		fmt.Printf("  Workers: %d\n", cfg.Workers)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n⚠️  Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	// Load the dictionary (bundled, file, or remote word list)
	wordBank, err := loadDictionary(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	if cfg.Verbose {
		fmt.Printf("  Loaded dictionary: %d words\n", wordBank.Size())
	}

	// Build the goal shape from the pattern text or artfile
	var shape pattern.Shape
	if cfg.Pattern != "" {
		shape = pattern.FromString(cfg.Pattern)
	} else {
		shape, err = pattern.FromFile(cfg.Artfile)
		if err != nil {
			log.Fatalf("Failed to read artfile: %v", err)
		}
	}

	// Search every row for matching candidates
	m := matcher.New(solution)
	collector := aggregator.New(cfg.Verbose)

	if err := search.FindAll(ctx, wordBank.Words(), m, shape, cfg.Workers, collector); err != nil {
		log.Fatalf("Search error: %v", err)
	}

	if cfg.Verbose {
		collector.PrintFinalStats()
	}

	// Render the answer
	switch cfg.Format {
	case config.FormatFull:
		outputio.OutputText(render.RenderFull(collector.Answer()))
	case config.FormatJSON:
		if err := outputio.OutputJSON(collector, solution); err != nil {
			log.Fatalf("Output error: %v", err)
		}
	default:
		renderer := render.New(cfg.Seed)
		outputio.OutputText(renderer.RenderExample(collector.Answer()))
	}

	if cfg.Verbose {
		fmt.Println("✅ Art complete!")
	}
}
