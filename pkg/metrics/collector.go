// Package metrics exposes execution counters for the interpreter. Counters
// are observational only; no evaluation decision ever reads them.
package metrics

// Collector receives execution events from the interpreter.
type Collector interface {
	// StatementExecuted is called once per dispatched statement with the
	// statement's node kind.
	StatementExecuted(kind string)
	// VariableDeclared is called once per successful variable declaration.
	VariableDeclared()
	// RunFinished is called when a run completes or aborts.
	RunFinished(failed bool)
}

// NoopCollector is the default collector; it discards every event.
type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

func (nc *NoopCollector) StatementExecuted(kind string) {}
func (nc *NoopCollector) VariableDeclared()             {}
func (nc *NoopCollector) RunFinished(failed bool)       {}
