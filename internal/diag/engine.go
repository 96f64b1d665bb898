package diag

import "mira/internal/source"

// Consumer receives diagnostics emitted through an Engine.
type Consumer interface {
	Consume(d Diagnostic)
}

// ConsumerFunc adapts a function to the Consumer interface.
type ConsumerFunc func(d Diagnostic)

func (f ConsumerFunc) Consume(d Diagnostic) { f(d) }

// Engine fans reported diagnostics out to the attached consumers and tracks
// whether any error-severity diagnostic has been seen. Consumers can be
// detached wholesale and reattached later, which is how speculative analysis
// passes keep their noise out of user-visible output.
type Engine struct {
	consumers []Consumer
	hadErrors bool
}

// NewEngine creates an Engine with no consumers attached.
func NewEngine() *Engine {
	return &Engine{}
}

// AddConsumer attaches a consumer to the engine.
func (e *Engine) AddConsumer(c Consumer) {
	if c == nil {
		return
	}
	e.consumers = append(e.consumers, c)
}

// TakeConsumers detaches and returns all attached consumers. Diagnostics
// reported while no consumers are attached are dropped (the error flag is
// still tracked).
func (e *Engine) TakeConsumers() []Consumer {
	taken := e.consumers
	e.consumers = nil
	return taken
}

// HadErrors reports whether any SevError diagnostic has been emitted since
// the last ResetErrorFlag.
func (e *Engine) HadErrors() bool {
	return e.hadErrors
}

// ResetErrorFlag clears the accumulated error flag.
func (e *Engine) ResetErrorFlag() {
	e.hadErrors = false
}

// Report implements Reporter.
func (e *Engine) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if sev >= SevError {
		e.hadErrors = true
	}
	if len(e.consumers) == 0 {
		return
	}
	d := Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes,
	}
	for _, c := range e.consumers {
		c.Consume(d)
	}
}

// Suppress detaches every consumer and returns a restore function that
// reattaches them and clears the error flag. Callers must invoke restore on
// every exit path, typically via defer, so a failed pass cannot leave the
// engine muted or the error flag set.
func Suppress(e *Engine) (restore func()) {
	taken := e.TakeConsumers()
	return func() {
		for _, c := range taken {
			e.AddConsumer(c)
		}
		e.ResetErrorFlag()
	}
}
