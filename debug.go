package slides

import (
	"fmt"
	"os"
)

// globalDebug enables disposed-node and tree-depth checks in tree
// operations. It follows the last SetDebugMode call.
var globalDebug bool

// SetDebugMode enables diagnostics on stderr: rejected and dropped
// transitions, relayouts and easing fallbacks. It also turns on checks that
// panic when a disposed node is used in a tree operation.
func (w *Widget) SetDebugMode(enabled bool) {
	w.debug = enabled
	globalDebug = enabled
}

// logf prints a widget diagnostic when debug mode is on.
func (w *Widget) logf(format string, args ...any) {
	if !w.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[slides] widget %d: %s\n", w.id, fmt.Sprintf(format, args...))
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("slides debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[slides] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
