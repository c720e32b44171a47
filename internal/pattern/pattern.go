package pattern

import (
	"fmt"
	"os"
	"strings"
)

const (
	// WordLength is the number of letters in a solution or guess word
	WordLength = 5

	// GuessCount is the number of guess rows in a puzzle
	GuessCount = 6

	// RowSeparator splits pattern rows when the pattern is given on the
	// command line, where literal newlines are awkward
	RowSeparator = "/"
)

// Row describes the desired feedback for one guess row: true at position i
// means the rendered word must show a correct-position (green) letter there,
// false means it must not.
type Row [WordLength]bool

// Shape is the desired layout for a full puzzle, one Row per guess.
type Shape [GuessCount]Row

// FromString builds a Shape from a textual pattern. Rows are separated by
// RowSeparator or newlines. Any non-space character marks a position as
// requiring green; the character itself is irrelevant. Short lines are padded,
// long lines truncated, and the row list is padded with empty rows (or
// truncated) to exactly GuessCount rows.
func FromString(raw string) Shape {
	var shape Shape

	lines := strings.Split(strings.ReplaceAll(raw, RowSeparator, "\n"), "\n")
	for i, line := range lines {
		if i >= GuessCount {
			break
		}
		shape[i] = rowFromLine(line)
	}

	return shape
}

// FromFile builds a Shape from a pattern file (an "artfile")
func FromFile(path string) (Shape, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Shape{}, fmt.Errorf("reading artfile: %w", err)
	}

	return FromString(string(contents)), nil
}

// rowFromLine converts one pattern line to a Row. Positions beyond the end of
// the line are unmarked.
func rowFromLine(line string) Row {
	line = strings.TrimSuffix(line, "\r")

	var row Row
	for i := 0; i < WordLength && i < len(line); i++ {
		row[i] = line[i] != ' '
	}

	return row
}
