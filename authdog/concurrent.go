package authdog

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Concurrency limits for FetchAll
const (
	DefaultConcurrency = 10
	MaxConcurrency     = 20
)

// Result is the outcome of one lookup performed by FetchAll
type Result struct {
	Index int
	Token string
	Info  *UserInfoResponse
	Err   error
}

// FetchAll looks up every token with at most concurrency requests in flight.
// Results are returned in input order. A failed lookup is recorded in its
// Result and does not stop the others.
func FetchAll(ctx context.Context, api UserInfoAPI, tokens []string, concurrency int) []Result {
	results := make([]Result, len(tokens))
	if len(tokens) == 0 {
		return results
	}

	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if concurrency > MaxConcurrency {
		concurrency = MaxConcurrency
	}

	// Lookups never return an error to the group, so ctx is only cancelled
	// by the caller
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, token := range tokens {
		g.Go(func() error {
			info, err := api.GetUserInfo(ctx, token)
			// Each goroutine owns its slot
			results[i] = Result{Index: i, Token: token, Info: info, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
