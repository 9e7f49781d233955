package recovery

import "fmt"

// StrictStrategy fails the pass on the first internal inconsistency.
type StrictStrategy struct{}

func NewStrictStrategy() *StrictStrategy { return &StrictStrategy{} }

func (s *StrictStrategy) OnError(err error, location Location) Action {
	return ActionFail
}

// LenientStrategy accepts structurally complete but degraded output.
// Encountered errors are accumulated for later inspection.
type LenientStrategy struct {
	Errors []error
}

func NewLenientStrategy() *LenientStrategy { return &LenientStrategy{} }

func (s *LenientStrategy) OnError(err error, location Location) Action {
	s.Errors = append(s.Errors, fmt.Errorf("[%s] object %d offset %d: %w",
		location.Component, location.ObjectNum, location.ByteOffset, err))
	return ActionWarn
}
