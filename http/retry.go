package http

import "time"

// attemptOutcome classifies the result of a single fetch attempt. Attempt
// count and backoff delay are data, not control-flow side effects: the
// schedule lives in Fetcher.delays and the loop in Fetch consumes it.
type attemptOutcome int

const (
	// outcomeSuccess means the attempt produced a usable response.
	outcomeSuccess attemptOutcome = iota

	// outcomeRetryable means the attempt failed in a way that the next
	// attempt might not (connection reset/refused, HTTP 5xx).
	outcomeRetryable

	// outcomeTerminal means further attempts cannot help (HTTP 4xx,
	// exhausted per-attempt timeout, malformed URL).
	outcomeTerminal
)

// DefaultRetryDelays returns the backoff delays between fetch attempts:
// 500ms then 1s, for 3 attempts total.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{500 * time.Millisecond, 1 * time.Second}
}
