// Package recovery defines how the writer reacts to internal
// inconsistencies that have a degraded-but-valid recovery path.
package recovery

// Location identifies where in a write pass an error was detected.
type Location struct {
	ByteOffset int64
	ObjectNum  int
	Component  string
}

type Action int

const (
	ActionFail Action = iota
	ActionSkip
	ActionWarn
)

// Strategy decides whether an error aborts the pass or degrades the output.
type Strategy interface {
	OnError(err error, location Location) Action
}
