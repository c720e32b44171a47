package config

import (
	"flag"
	"fmt"
	"os"
	"regexp"

	"github.com/wordart/wordle-art/internal/pattern"
)

// Output formats
const (
	FormatExample = "example" // one weighted-random word per row
	FormatFull    = "full"    // every candidate per row
	FormatJSON    = "json"    // full answer plus stats as JSON
)

// Config holds all configuration for the art generator
type Config struct {
	Solution  string
	Pattern   string
	Artfile   string
	Format    string
	DictFile  string
	DictURL   string
	RateLimit float64 // requests per second for dictionary download (0 = no limit)
	Workers   int
	Seed      int64
	Verbose   bool
}

// WordFilterConfig holds word filtering configuration
type WordFilterConfig struct {
	// Pattern for valid dictionary words (exactly WordLength letters, a-z)
	Pattern *regexp.Regexp
}

var wordFilter = &WordFilterConfig{
	Pattern: regexp.MustCompile(fmt.Sprintf(`^[a-z]{%d}$`, pattern.WordLength)),
}

// GetWordFilterConfig returns the word filtering configuration
func GetWordFilterConfig() *WordFilterConfig {
	return wordFilter
}

// ParseFlags parses command line flags and returns configuration.
// The solution word is the single positional argument.
func ParseFlags() (*Config, error) {
	config := &Config{}

	flag.StringVar(&config.Pattern, "pattern", "", "Target pattern; rows separated by '/' or newlines")
	flag.StringVar(&config.Artfile, "artfile", "", "Path to artfile containing the target pattern")
	flag.StringVar(&config.Format, "format", FormatExample, "Output format: example, full or json")
	flag.StringVar(&config.DictFile, "dict", "", "Dictionary file (default: bundled dictionary)")
	flag.StringVar(&config.DictURL, "dict-url", "", "URL of a word list page to use as the dictionary")
	flag.Float64Var(&config.RateLimit, "rate-limit", 0, "Requests per second for dictionary download (0 = no limit)")
	flag.IntVar(&config.Workers, "workers", pattern.GuessCount, "Number of concurrent search workers")
	flag.Int64Var(&config.Seed, "seed", 0, "Random seed for example output (0 = time-based)")
	flag.BoolVar(&config.Verbose, "verbose", false, "Enable verbose logging")

	flag.Parse()

	if flag.NArg() != 1 {
		return nil, fmt.Errorf("exactly one solution word is required")
	}
	config.Solution = flag.Arg(0)

	return config, config.validate()
}

// validate checks flag values for consistency
func (c *Config) validate() error {
	if len(c.Solution) != pattern.WordLength {
		return fmt.Errorf("solution must be %d letters, got %q", pattern.WordLength, c.Solution)
	}

	if (c.Pattern == "") == (c.Artfile == "") {
		return fmt.Errorf("exactly one of --pattern or --artfile is required")
	}

	switch c.Format {
	case FormatExample, FormatFull, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (want example, full or json)", c.Format)
	}

	if c.DictFile != "" && c.DictURL != "" {
		return fmt.Errorf("--dict and --dict-url are mutually exclusive")
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("--rate-limit must be non-negative (0 = no limit)")
	}

	if c.Workers <= 0 {
		return fmt.Errorf("--workers must be positive")
	}

	return nil
}

// ValidateFiles checks if configured input files exist
func (c *Config) ValidateFiles() error {
	if c.Artfile != "" {
		if _, err := os.Stat(c.Artfile); os.IsNotExist(err) {
			return fmt.Errorf("artfile does not exist: %s", c.Artfile)
		}
	}

	if c.DictFile != "" {
		if _, err := os.Stat(c.DictFile); os.IsNotExist(err) {
			return fmt.Errorf("dictionary file does not exist: %s", c.DictFile)
		}
	}

	return nil
}
