package search

import (
	"context"
	"sync"

	"github.com/wordart/wordle-art/internal/aggregator"
	"github.com/wordart/wordle-art/internal/matcher"
	"github.com/wordart/wordle-art/internal/pattern"
)

// rowJob identifies one guess row to search
type rowJob struct {
	index int
	row   pattern.Row
}

// FindMatches filters the dictionary through the feedback matcher for one
// goal row. The result preserves dictionary order: this is a stable filter,
// and the renderer's weighting depends on that order.
func FindMatches(words []string, m *matcher.Matcher, row pattern.Row) []string {
	var matches []string
	for _, word := range words {
		if m.Matches(word, row) {
			matches = append(matches, word)
		}
	}
	return matches
}

// FindAll searches every row of the shape against the dictionary, fanning
// rows out across a pool of workers. Rows are mutually independent, so
// workers share nothing but the job channel; each finished row is delivered
// to the collector tagged with its index, which keeps the answer ordered
// regardless of which worker finishes first.
func FindAll(
	ctx context.Context,
	words []string,
	m *matcher.Matcher,
	shape pattern.Shape,
	workers int,
	collector *aggregator.Collector,
) error {
	if workers <= 0 || workers > pattern.GuessCount {
		workers = pattern.GuessCount
	}

	jobCh := make(chan rowJob, pattern.GuessCount)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case job, ok := <-jobCh:
					if !ok {
						return
					}
					matches := FindMatches(words, m, job.row)
					collector.AddRow(job.index, matches, len(words))
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	for i, row := range shape {
		select {
		case jobCh <- rowJob{index: i, row: row}:
		case <-ctx.Done():
		}
	}
	close(jobCh)

	wg.Wait()

	return ctx.Err()
}
