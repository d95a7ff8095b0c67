// Package interpreter walks a parsed Brio program and executes it.
package interpreter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"brio/interpreter-go/pkg/ast"
	"brio/interpreter-go/pkg/metrics"
	"brio/interpreter-go/pkg/runtime"
)

// Stats mirrors the observational execution counters. They have no
// semantic effect on evaluation.
type Stats struct {
	StatementsExecuted int
	VariablesDeclared  int
}

// Interpreter executes programs against a line-based output channel and a
// token-based input channel. Execution is single-threaded; the only
// blocking point is the inputi read.
type Interpreter struct {
	out     io.Writer
	in      *bufio.Scanner
	log     zerolog.Logger
	trace   bool
	metrics metrics.Collector
	stats   Stats
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger used for trace output.
func WithLogger(log zerolog.Logger) Option {
	return func(i *Interpreter) { i.log = log }
}

// WithTrace logs every statement dispatch before execution.
func WithTrace() Option {
	return func(i *Interpreter) { i.trace = true }
}

// WithMetrics publishes execution counters to the given collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(i *Interpreter) { i.metrics = collector }
}

// New returns an interpreter writing lines to out and reading
// whitespace-delimited input tokens from in.
func New(out io.Writer, in io.Reader, opts ...Option) *Interpreter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	i := &Interpreter{
		out:     out,
		in:      scanner,
		log:     zerolog.Nop(),
		metrics: metrics.NewNoopCollector(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Stats returns the counters accumulated since construction or the last
// ResetStats.
func (i *Interpreter) Stats() Stats {
	return i.stats
}

func (i *Interpreter) ResetStats() {
	i.stats = Stats{}
}

// Run executes the program's main function top to bottom against a fresh
// environment. The first error aborts the run; output already written
// stays written.
func (i *Interpreter) Run(program *ast.Program) error {
	err := i.run(program)
	i.metrics.RunFinished(err != nil)
	return err
}

func (i *Interpreter) run(program *ast.Program) error {
	main := findMain(program)
	if main == nil {
		return runtime.NameErrorf("No main() function was found")
	}
	env := runtime.NewEnvironment()
	for idx, stmt := range main.Statements {
		if i.trace {
			i.log.Debug().
				Int("index", idx).
				Str("kind", string(stmt.NodeType())).
				Msg("executing statement")
		}
		if err := i.runStatement(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

func findMain(program *ast.Program) *ast.FunctionDefinition {
	for _, fn := range program.Functions {
		if fn.Name == "main" && len(fn.Params) == 0 {
			return fn
		}
	}
	return nil
}

func (i *Interpreter) runStatement(stmt ast.Statement, env *runtime.Environment) error {
	i.stats.StatementsExecuted++
	i.metrics.StatementExecuted(string(stmt.NodeType()))
	switch n := stmt.(type) {
	case *ast.VarDeclaration:
		if err := env.Declare(n.Name); err != nil {
			return err
		}
		i.stats.VariablesDeclared++
		i.metrics.VariableDeclared()
		return nil
	case *ast.Assignment:
		// The target must exist before the right-hand side runs, so an
		// assignment to an undeclared name fails without side effects.
		if !env.Has(n.Var) {
			return runtime.NameErrorf("Variable %s has not been defined", n.Var)
		}
		val, err := i.evaluateExpression(n.Expression, env)
		if err != nil {
			return err
		}
		return env.Write(n.Var, val)
	case ast.Expression:
		_, err := i.evaluateExpression(n, env)
		return err
	default:
		return fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateExpression(expr ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := expr.(type) {
	case *ast.IntLiteral:
		return runtime.IntValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.VariableReference:
		return env.Read(n.Name)
	case *ast.CallExpression:
		return i.callBuiltin(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinary(n, env)
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateBinary(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Op1, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Op2, env)
	if err != nil {
		return nil, err
	}
	lv, lok := left.(runtime.IntValue)
	rv, rok := right.(runtime.IntValue)
	if !lok || !rok {
		return nil, runtime.TypeErrorf("Incompatible types for arithmetic operation")
	}
	switch expr.Op {
	case ast.OpAdd:
		return runtime.IntValue{Val: lv.Val + rv.Val}, nil
	case ast.OpSubtract:
		return runtime.IntValue{Val: lv.Val - rv.Val}, nil
	default:
		return nil, fmt.Errorf("unsupported binary operator %q", expr.Op)
	}
}
