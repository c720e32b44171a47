package search

import (
	"context"
	"reflect"
	"testing"

	"github.com/wordart/wordle-art/internal/aggregator"
	"github.com/wordart/wordle-art/internal/matcher"
	"github.com/wordart/wordle-art/internal/pattern"
)

var testWords = []string{
	"sixty", "sneer", "speed", "stand", "fleet", "dress", "about", "sorry",
}

// TestFindMatches_PreservesOrder tests that matches keep dictionary order
func TestFindMatches_PreservesOrder(t *testing.T) {
	m := matcher.New("speed")
	row := pattern.Row{true, false, false, false, false}

	matches := FindMatches(testWords, m, row)

	// 'sixty' and 'sorry' lead with s and share nothing else with 'speed';
	// 'sneer' has a forbidden green e, 'stand' a forbidden green d
	expected := []string{"sixty", "sorry"}
	if !reflect.DeepEqual(matches, expected) {
		t.Errorf("Expected %v, got %v", expected, matches)
	}
}

// TestFindMatches_EmptyDictionary tests that an empty dictionary yields an
// empty candidate list, not an error
func TestFindMatches_EmptyDictionary(t *testing.T) {
	m := matcher.New("speed")

	matches := FindMatches(nil, m, pattern.Row{})

	if len(matches) != 0 {
		t.Errorf("Expected no matches, got %v", matches)
	}
}

// TestFindAll_MatchesSequentialSearch tests that the concurrent search
// produces exactly the per-row results of a sequential filter, for any
// worker count
func TestFindAll_MatchesSequentialSearch(t *testing.T) {
	m := matcher.New("speed")
	shape := pattern.FromString("x/ x/xxxxx//x   x/  x")

	var expected [][]string
	for _, row := range shape {
		expected = append(expected, FindMatches(testWords, m, row))
	}

	for _, workers := range []int{1, 2, pattern.GuessCount, 100} {
		collector := aggregator.New(false)

		err := FindAll(context.Background(), testWords, m, shape, workers, collector)
		if err != nil {
			t.Fatalf("workers=%d: expected no error, got %v", workers, err)
		}

		if !reflect.DeepEqual(collector.Answer(), expected) {
			t.Errorf("workers=%d: expected %v, got %v", workers, expected, collector.Answer())
		}
	}
}

// TestFindAll_Cancelled tests that a cancelled context aborts the search
func TestFindAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := matcher.New("speed")
	collector := aggregator.New(false)

	err := FindAll(ctx, testWords, m, pattern.Shape{}, 2, collector)
	if err == nil {
		t.Error("Expected context error after cancellation, got nil")
	}
}
