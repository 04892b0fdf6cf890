package model

// Lag declares a delayed-feedback channel. A module input naming a lag reads
// the source's value from Delay years earlier; for the first Delay years it
// reads Initial instead. Because the value crosses a year boundary, a lag
// input never creates a same-year dependency edge.
type Lag struct {
	// Source names a module output or a transform whose value is delayed.
	Source string

	// Delay is the number of years of staleness. Must be at least 1; the
	// channel's FIFO holds exactly Delay pending values at all times.
	Delay int

	// Initial seeds the FIFO before real history exists.
	Initial any
}
