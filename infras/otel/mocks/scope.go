package mocks

import "hoteladmin/infras/otel"

// Scope records what the code under test reported, so tests can assert on traced errors.
type Scope struct {
	Errors []error
	Events []string
	Ended  bool
}

// AddEvent implements otel.Scope.
func (s *Scope) AddEvent(name string) {
	s.Events = append(s.Events, name)
}

// End implements otel.Scope.
func (s *Scope) End() {
	s.Ended = true
}

// SetAttribute implements otel.Scope.
func (s *Scope) SetAttribute(_ string, _ any) {}

// SetAttributes implements otel.Scope.
func (s *Scope) SetAttributes(_ map[string]any) {}

// TraceError implements otel.Scope.
func (s *Scope) TraceError(err error) {
	s.Errors = append(s.Errors, err)
}

// TraceIfError implements otel.Scope.
func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func NewScope() otel.Scope {
	return &Scope{}
}
