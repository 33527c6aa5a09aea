package puzzle

import "time"

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// NewTickerFunc creates a Ticker with the given interval.
type NewTickerFunc func(d time.Duration) Ticker

// Clock returns the current time.
type Clock func() time.Time

type timeTicker struct {
	*time.Ticker
}

func (t *timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

// NewTimeTicker is the NewTickerFunc backed by time.Ticker.
func NewTimeTicker(d time.Duration) Ticker {
	return &timeTicker{Ticker: time.NewTicker(d)}
}
