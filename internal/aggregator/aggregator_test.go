package aggregator

import (
	"reflect"
	"sync"
	"testing"

	"github.com/wordart/wordle-art/internal/pattern"
)

// TestAddRow_IndexedCollection tests that rows land at their own index no
// matter the arrival order
func TestAddRow_IndexedCollection(t *testing.T) {
	collector := New(false)

	collector.AddRow(4, []string{"speed"}, 10)
	collector.AddRow(0, []string{"about", "sixty"}, 10)

	answer := collector.Answer()

	if !reflect.DeepEqual(answer[0], []string{"about", "sixty"}) {
		t.Errorf("Unexpected row 0: %v", answer[0])
	}
	if !reflect.DeepEqual(answer[4], []string{"speed"}) {
		t.Errorf("Unexpected row 4: %v", answer[4])
	}
	if answer[1] != nil {
		t.Errorf("Expected uncollected row to be nil, got %v", answer[1])
	}
	if len(answer) != pattern.GuessCount {
		t.Errorf("Expected %d rows, got %d", pattern.GuessCount, len(answer))
	}
}

// TestAddRow_Concurrent tests that concurrent workers can add rows safely
func TestAddRow_Concurrent(t *testing.T) {
	collector := New(false)

	var wg sync.WaitGroup
	for i := 0; i < pattern.GuessCount; i++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			collector.AddRow(row, []string{"about"}, 100)
		}(i)
	}
	wg.Wait()

	rows, evaluated, _ := collector.GetStats()
	if rows != pattern.GuessCount {
		t.Errorf("Expected %d rows collected, got %d", pattern.GuessCount, rows)
	}
	if evaluated != 100*pattern.GuessCount {
		t.Errorf("Expected %d words evaluated, got %d", 100*pattern.GuessCount, evaluated)
	}
}

// TestRows_EmptyListsNotNil tests that JSON rows carry empty lists instead of
// null for uncollected or empty rows
func TestRows_EmptyListsNotNil(t *testing.T) {
	collector := New(false)
	collector.AddRow(0, []string{"about"}, 5)

	rows := collector.Rows()

	if len(rows) != pattern.GuessCount {
		t.Fatalf("Expected %d rows, got %d", pattern.GuessCount, len(rows))
	}
	if rows[0].Row != 1 {
		t.Errorf("Expected 1-based row numbering, got %d", rows[0].Row)
	}
	for _, row := range rows[1:] {
		if row.Candidates == nil {
			t.Errorf("Expected empty candidate list for row %d, got nil", row.Row)
		}
	}
}

// TestGetStats_Elapsed tests that elapsed time is reported
func TestGetStats_Elapsed(t *testing.T) {
	collector := New(false)

	_, _, elapsed := collector.GetStats()
	if elapsed < 0 {
		t.Errorf("Expected non-negative elapsed time, got %f", elapsed)
	}
}
