package kropki

import (
	"fmt"
	"io"
)

// SearchPosition describes one branch decision taken by the search
// driver: the cell chosen by the MRV heuristic, the digit being tried,
// and where in the search tree the decision sits.
type SearchPosition interface {
	Cell() CellIndex
	Digit() int
	Depth() int
	Branches() uint64
}

// Tracer is notified of every branch decision. The zero-cost
// DefaultTracer is used when callers do not install one.
type Tracer interface {
	Trace(p SearchPosition)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	fmt.Fprintf(t.Writer, "branch %d: depth %d, trying %d at %s\n",
		p.Branches(), p.Depth(), p.Digit(), p.Cell())
}
