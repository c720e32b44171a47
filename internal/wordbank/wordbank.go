package wordbank

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wordart/wordle-art/internal/config"
)

//go:embed dict.txt
var bundledDict []byte

// WordBank holds the candidate dictionary. Word order is preserved from the
// source: the list is roughly ordered by commonality, and the renderer's
// sampling weights lean on that ordering.
type WordBank struct {
	words []string
	index map[string]bool
}

// New creates a WordBank from the bundled dictionary
func New() (*WordBank, error) {
	wb, err := load(bytes.NewReader(bundledDict))
	if err != nil {
		return nil, fmt.Errorf("loading bundled dictionary: %w", err)
	}
	return wb, nil
}

// NewFromFile creates a WordBank from a newline-separated word file
func NewFromFile(filename string) (*WordBank, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary file: %w", err)
	}
	defer file.Close()

	wb, err := load(file)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary file: %w", err)
	}
	return wb, nil
}

// NewFromWords creates a WordBank from an already-extracted word list,
// applying the same filtering as the file loaders
func NewFromWords(words []string) *WordBank {
	wb := &WordBank{index: make(map[string]bool)}
	for _, word := range words {
		wb.add(word)
	}
	return wb
}

// load reads words line by line, keeping source order
func load(r io.Reader) (*WordBank, error) {
	wb := &WordBank{index: make(map[string]bool)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		wb.add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return wb, nil
}

// add appends a word if it passes the filter and is not already present.
// Words are lowercased so matching is case-insensitive throughout.
func (wb *WordBank) add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || wb.index[word] {
		return
	}

	if !config.GetWordFilterConfig().Pattern.MatchString(word) {
		return
	}

	wb.words = append(wb.words, word)
	wb.index[word] = true
}

// Words returns the dictionary in source order. Callers must not modify the
// returned slice.
func (wb *WordBank) Words() []string {
	return wb.words
}

// Contains checks if a word is in the dictionary
func (wb *WordBank) Contains(word string) bool {
	return wb.index[strings.ToLower(word)]
}

// Size returns the number of words in the word bank
func (wb *WordBank) Size() int {
	return len(wb.words)
}
