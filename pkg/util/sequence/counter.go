package sequence

import "go.uber.org/atomic"

// Counter issues strictly increasing integers. The first value is 1, values
// never repeat within the Counter's lifetime, and there is no upper bound
// short of the uint64 ceiling.
//
// The zero value is ready to use. Counter is safe for concurrent use.
type Counter struct {
	n atomic.Uint64
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() uint64 {
	return c.n.Inc()
}
