package binary

import (
	"context"
	"log/slog"
)

// Verbosity controls whether a Tree reports its structural decisions.
type Verbosity int

const (
	// TraceOff is the default: no events are produced at all.
	TraceOff Verbosity = iota
	// TraceOn reports every insertion side, search outcome, extremum,
	// successor/predecessor step, transplant and delete case.
	TraceOn
)

func (v Verbosity) String() string {
	switch v {
	case TraceOff:
		return "off"
	case TraceOn:
		return "on"
	default:
		return "<invalid binary.Verbosity>"
	}
}

// Op names the operation an Event came from.
type Op string

const (
	OpInsert      Op = "insert"
	OpSearch      Op = "search"
	OpMinimum     Op = "minimum"
	OpMaximum     Op = "maximum"
	OpSuccessor   Op = "successor"
	OpPredecessor Op = "predecessor"
	OpTransplant  Op = "transplant"
	OpDelete      Op = "delete"
)

// Cases reported in Event.Case.
const (
	CaseRoot              = "root"  // insert: new root; transplant: replaced the root
	CaseLeft              = "left"  // insert/transplant: parent's left slot
	CaseRight             = "right" // insert/transplant: parent's right slot
	CaseFound             = "found"
	CaseMiss              = "miss"
	CaseSubtree           = "subtree"  // successor/predecessor: extremum of a child subtree
	CaseAncestor          = "ancestor" // successor/predecessor: found by walking up
	CaseNone              = "none"
	CaseNoLeft            = "no-left"
	CaseNoRight           = "no-right"
	CaseTwoChildren       = "two-children"
	CaseSuccessorDetached = "successor-detached"
)

// Event describes one structural decision taken by a Tree.
// Other holds a second key involved in the decision (the parent on insert,
// the replacement on transplant and delete, the result of successor and
// predecessor), or nil if there is none.
type Event struct {
	Op    Op
	Case  string
	Key   any
	Other any
}

// Tracer receives Events from a Tree with TraceOn verbosity.
// Trace is called synchronously from inside tree operations and must not
// call back into the same Tree.
type Tracer interface {
	Trace(Event)
}

// TracerFunc adapts a function to a Tracer.
type TracerFunc func(Event)

func (f TracerFunc) Trace(ev Event) {
	f(ev)
}

// LogTracer returns a Tracer writing each Event to l at debug level.
func LogTracer(l *slog.Logger) Tracer {
	return TracerFunc(func(ev Event) {
		if !l.Enabled(context.Background(), slog.LevelDebug) {
			return
		}

		args := []any{"op", string(ev.Op), "case", ev.Case, "key", ev.Key}
		if ev.Other != nil {
			args = append(args, "other", ev.Other)
		}
		l.Debug("ordtree", args...)
	})
}

type config struct {
	tracer    Tracer
	verbosity Verbosity
}

// Option configures a Tree at construction.
type Option func(*config)

// WithTracer sets where events go when tracing is on.
// It does not turn tracing on by itself.
func WithTracer(tr Tracer) Option {
	return func(c *config) {
		c.tracer = tr
	}
}

// WithVerbosity sets the initial verbosity. With TraceOn and no
// WithTracer, events go to LogTracer(slog.Default()).
func WithVerbosity(v Verbosity) Option {
	return func(c *config) {
		c.verbosity = v
	}
}

// SetVerbosity changes the verbosity of an existing Tree.
func (t *Tree[T]) SetVerbosity(v Verbosity) {
	t.verbosity = v
	if v == TraceOn && t.tracer == nil {
		t.tracer = LogTracer(slog.Default())
	}
}

func (t *Tree[T]) tracing() bool {
	return t.verbosity == TraceOn && t.tracer != nil
}

func (t *Tree[T]) trace(op Op, c string, key T) {
	if !t.tracing() {
		return
	}
	t.tracer.Trace(Event{Op: op, Case: c, Key: key})
}

func (t *Tree[T]) traceOther(op Op, c string, key, other T) {
	if !t.tracing() {
		return
	}
	t.tracer.Trace(Event{Op: op, Case: c, Key: key, Other: other})
}
