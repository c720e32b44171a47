package main

import (
	"context"
	"fmt"

	"github.com/wordart/wordle-art/internal/config"
	"github.com/wordart/wordle-art/internal/fetcher"
	"github.com/wordart/wordle-art/internal/parser"
	"github.com/wordart/wordle-art/internal/wordbank"
)

// loadDictionary builds the run's word bank from the configured source:
// a remote word-list page, a local file, or the bundled dictionary.
func loadDictionary(ctx context.Context, cfg *config.Config) (*wordbank.WordBank, error) {
	switch {
	case cfg.DictURL != "":
		return fetchDictionary(ctx, cfg)
	case cfg.DictFile != "":
		return wordbank.NewFromFile(cfg.DictFile)
	default:
		return wordbank.New()
	}
}

// fetchDictionary downloads a word-list page and extracts its words
func fetchDictionary(ctx context.Context, cfg *config.Config) (*wordbank.WordBank, error) {
	if cfg.Verbose {
		fmt.Printf("  Fetching dictionary from %s...\n", cfg.DictURL)
	}

	fetch := fetcher.New(cfg.RateLimit, cfg.Verbose)

	body, contentType, err := fetch.Fetch(ctx, cfg.DictURL)
	if err != nil {
		return nil, fmt.Errorf("fetching word list: %w", err)
	}
	defer body.Close()

	words, err := parser.New(cfg.Verbose).ExtractWords(body, contentType)
	if err != nil {
		return nil, fmt.Errorf("extracting words: %w", err)
	}

	return wordbank.NewFromWords(words), nil
}
