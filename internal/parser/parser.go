package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wordart/wordle-art/internal/pattern"
)

// Parser extracts candidate dictionary words from a downloaded word-list
// resource, which may be a plain text file or an HTML page
type Parser struct {
	verbose   bool
	wordRegex *regexp.Regexp
}

// New creates a new Parser
func New(verbose bool) *Parser {
	return &Parser{
		verbose:   verbose,
		wordRegex: regexp.MustCompile(`[a-zA-Z]+`),
	}
}

// ExtractWords pulls words of exactly pattern.WordLength letters out of the
// resource, lowercased and deduplicated, preserving first-seen order. HTML
// content is reduced to text first; anything else is scanned as plain text.
func (p *Parser) ExtractWords(reader io.Reader, contentType string) ([]string, error) {
	var words []string
	var err error

	if strings.Contains(contentType, "html") {
		words, err = p.extractFromHTML(reader)
	} else {
		words, err = p.extractFromText(reader)
	}
	if err != nil {
		return nil, err
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("no %d-letter words found in word list", pattern.WordLength)
	}

	if p.verbose {
		fmt.Printf("✅ Extracted %d words from word list\n", len(words))
	}

	return words, nil
}

// extractFromHTML strips markup with goquery and collects words from the
// page's visible text
func (p *Parser) extractFromHTML(reader io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	// Scripts and styles would otherwise leak identifiers into the word list
	doc.Find("script, style").Remove()

	// Gather text node by node. Selection.Text() joins adjacent text nodes
	// with no separator, which would fuse list entries like
	// <li>about</li><li>sixty</li> into a single unusable token.
	var sb strings.Builder
	doc.Find("body, body *").Contents().Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "#text" {
			sb.WriteString(s.Text())
			sb.WriteByte('\n')
		}
	})

	return p.collect(sb.String()), nil
}

// extractFromText collects words from a plain text word list
func (p *Parser) extractFromText(reader io.Reader) ([]string, error) {
	var words []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		for _, word := range p.matching(scanner.Text()) {
			if !seen[word] {
				seen[word] = true
				words = append(words, word)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	return words, nil
}

// collect deduplicates the qualifying words of a text blob, preserving order
func (p *Parser) collect(text string) []string {
	var words []string
	seen := make(map[string]bool)

	for _, word := range p.matching(text) {
		if !seen[word] {
			seen[word] = true
			words = append(words, word)
		}
	}

	return words
}

// matching returns the lowercased words of the required length in text
func (p *Parser) matching(text string) []string {
	var words []string
	for _, token := range p.wordRegex.FindAllString(text, -1) {
		if len(token) == pattern.WordLength {
			words = append(words, strings.ToLower(token))
		}
	}
	return words
}
