package io

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wordart/wordle-art/internal/aggregator"
)

// Result represents the full search result for JSON output
type Result struct {
	Solution          string                 `json:"solution"`
	Rows              []aggregator.RowResult `json:"rows"`
	WordsEvaluated    int                    `json:"words_evaluated"`
	SearchTimeSeconds float64                `json:"search_time_seconds"`
}

// OutputText writes rendered art lines to stdout, one per row
func OutputText(lines []string) {
	fmt.Println(strings.Join(lines, "\n"))
}

// OutputJSON outputs the full answer and search stats as JSON to stdout
func OutputJSON(collector *aggregator.Collector, solution string) error {
	_, evaluated, elapsed := collector.GetStats()

	result := Result{
		Solution:          solution,
		Rows:              collector.Rows(),
		WordsEvaluated:    evaluated,
		SearchTimeSeconds: elapsed,
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result to JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}
