package burrow

import (
	"fmt"
	"os"
	"time"
)

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, oversized child lists are reported, and per-frame tick and
// draw timings are printed to stderr.
func (s *Surface) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Surface debug flag so that node
// operations (which lack a Surface pointer) can check it cheaply.
var globalDebug bool

// debugLogTick prints the tick duration and subscriber count to stderr.
func (s *Surface) debugLogTick(elapsed time.Duration) {
	_, _ = fmt.Fprintf(os.Stderr, "[burrow] tick: %v | subscribers: %d | nodes: %d\n",
		elapsed, s.ticker.Len(), s.stage.NumChildren())
}

// debugLogDraw prints the draw duration and draw-call count to stderr.
func (s *Surface) debugLogDraw(elapsed time.Duration) {
	_, _ = fmt.Fprintf(os.Stderr, "[burrow] draw: %v | draw calls: %d\n", elapsed, s.drawCount)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("burrow debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxChildCount is well above a normal bunny population; crossing it
// usually means entities are added without ever being destroyed.
const debugMaxChildCount = 50_000

// debugCheckChildCount warns on stderr once a node crosses debugMaxChildCount.
func debugCheckChildCount(n *Node) {
	if len(n.children) == debugMaxChildCount+1 {
		_, _ = fmt.Fprintf(os.Stderr, "[burrow] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
