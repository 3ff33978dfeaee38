package gesture

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// defaultLogger backs the package logger until SetLogger replaces it.
// Scene.SetDebugMode toggles its level.
var defaultLogger = newDefaultLogger()

var logger logrus.FieldLogger = defaultLogger.WithField("pkg", "gesture")

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLogger replaces the package logger. Passing nil restores the default
// stderr logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger = defaultLogger.WithField("pkg", "gesture")
		return
	}
	logger = l
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("gesture debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.WithFields(logrus.Fields{
			"node":  n.Name,
			"depth": depth,
			"limit": debugMaxTreeDepth,
		}).Warn("tree depth exceeds limit")
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.WithFields(logrus.Fields{
			"node":     n.Name,
			"children": len(n.children),
			"limit":    debugMaxChildCount,
		}).Warn("child count exceeds limit")
	}
}
