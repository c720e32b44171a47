package render

import (
	"reflect"
	"strings"
	"testing"
)

// TestRenderFull tests exhaustive output formatting
func TestRenderFull(t *testing.T) {
	answer := [][]string{
		{"about", "sixty"},
		{},
		{"speed"},
	}

	lines := RenderFull(answer)

	expected := []string{"ABOUT SIXTY", "", "SPEED"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected %v, got %v", expected, lines)
	}
}

// TestRenderExample_EmptyRow tests that a row with no candidates renders the
// sentinel and does not poison later rows
func TestRenderExample_EmptyRow(t *testing.T) {
	renderer := New(1)

	lines := renderer.RenderExample([][]string{
		{},
		{"about"},
	})

	if lines[0] != NoSolution {
		t.Errorf("Expected sentinel for empty row, got %q", lines[0])
	}
	if lines[1] != "ABOUT" {
		t.Errorf("Expected ABOUT, got %q", lines[1])
	}
}

// TestRenderExample_AvoidsUsedWords tests that overlapping candidate lists
// never repeat a word while unused candidates remain
func TestRenderExample_AvoidsUsedWords(t *testing.T) {
	candidates := []string{"about", "sixty"}

	for seed := int64(1); seed <= 20; seed++ {
		renderer := New(seed)

		lines := renderer.RenderExample([][]string{candidates, candidates})

		if lines[0] == lines[1] {
			t.Errorf("seed %d: expected distinct words, got %v", seed, lines)
		}
		for _, line := range lines {
			if line != "ABOUT" && line != "SIXTY" {
				t.Errorf("seed %d: unexpected word %q", seed, line)
			}
		}
	}
}

// TestRenderExample_ReuseWhenUnavoidable tests that a word is reused only
// when a row has no unused candidates
func TestRenderExample_ReuseWhenUnavoidable(t *testing.T) {
	renderer := New(1)

	lines := renderer.RenderExample([][]string{
		{"speed"},
		{"speed"},
	})

	expected := []string{"SPEED", "SPEED"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected %v, got %v", expected, lines)
	}
}

// TestRenderExample_Uppercased tests display case normalization
func TestRenderExample_Uppercased(t *testing.T) {
	renderer := New(1)

	lines := renderer.RenderExample([][]string{{"about"}})

	if lines[0] != strings.ToUpper("about") {
		t.Errorf("Expected uppercase output, got %q", lines[0])
	}
}

// TestPickWeighted_FavorsEarlyWords tests that sampling is biased toward
// words earlier in the pool, roughly following the (n-rank)^2 weights
func TestPickWeighted_FavorsEarlyWords(t *testing.T) {
	renderer := New(42)
	pool := []string{"first", "mid", "last"}

	counts := make(map[string]int)
	const runs = 9000
	for i := 0; i < runs; i++ {
		word, ok := renderer.pickWeighted(pool)
		if !ok {
			t.Fatal("Expected a pick from a non-empty pool")
		}
		counts[word]++
	}

	// Weights are 9, 4 and 1, so expectations are ~9/14, ~4/14 and ~1/14 of
	// the runs. Allow generous slack for sampling noise.
	if counts["first"] <= counts["mid"] || counts["mid"] <= counts["last"] {
		t.Errorf("Expected decreasing frequencies, got %v", counts)
	}
	if counts["first"] < runs/2 {
		t.Errorf("Expected 'first' to dominate (weight 9/14), got %v", counts)
	}
	if counts["last"] > runs/5 {
		t.Errorf("Expected 'last' to be rare (weight 1/14), got %v", counts)
	}
}

// TestPickWeighted_EmptyPool tests that the empty pool reports no pick
func TestPickWeighted_EmptyPool(t *testing.T) {
	renderer := New(1)

	if _, ok := renderer.pickWeighted(nil); ok {
		t.Error("Expected no pick from an empty pool")
	}
}

// TestPickWeighted_SingleWord tests the trivial pool
func TestPickWeighted_SingleWord(t *testing.T) {
	renderer := New(1)

	word, ok := renderer.pickWeighted([]string{"about"})
	if !ok || word != "about" {
		t.Errorf("Expected 'about', got %q (ok=%v)", word, ok)
	}
}
