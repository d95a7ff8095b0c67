package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespaceInterpreter = "brio"
	subsystemInterpreter = "interpreter"
)

// ExecutionCollector publishes interpreter counters to a Prometheus
// registry.
type ExecutionCollector struct {
	statementsExecuted *prometheus.CounterVec
	variablesDeclared  prometheus.Counter
	runsFinished       *prometheus.CounterVec
}

func NewExecutionCollector(registerer prometheus.Registerer) *ExecutionCollector {
	ec := &ExecutionCollector{

		statementsExecuted: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceInterpreter,
			Subsystem: subsystemInterpreter,
			Name:      "statements_executed_total",
			Help:      "count of statements dispatched, by statement kind",
		}, []string{"kind"}),

		variablesDeclared: promauto.With(registerer).NewCounter(prometheus.CounterOpts{
			Namespace: namespaceInterpreter,
			Subsystem: subsystemInterpreter,
			Name:      "variables_declared_total",
			Help:      "count of variable declarations executed",
		}),

		runsFinished: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceInterpreter,
			Subsystem: subsystemInterpreter,
			Name:      "runs_finished_total",
			Help:      "count of completed runs, by result",
		}, []string{"result"}),
	}

	return ec
}

func (ec *ExecutionCollector) StatementExecuted(kind string) {
	ec.statementsExecuted.WithLabelValues(kind).Inc()
}

func (ec *ExecutionCollector) VariableDeclared() {
	ec.variablesDeclared.Inc()
}

func (ec *ExecutionCollector) RunFinished(failed bool) {
	result := "ok"
	if failed {
		result = "error"
	}
	ec.runsFinished.WithLabelValues(result).Inc()
}
