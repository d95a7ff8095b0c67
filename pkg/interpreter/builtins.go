package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"brio/interpreter-go/pkg/ast"
	"brio/interpreter-go/pkg/runtime"
)

// callBuiltin dispatches a call to the closed builtin set. Argument
// expressions arrive unevaluated; each builtin controls when (and whether)
// its arguments run. Ordinary function calls do not exist in the language,
// so any other callee is a name error.
func (i *Interpreter) callBuiltin(call *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	switch call.Name {
	case "print":
		return i.builtinPrint(call.Args, env)
	case "inputi":
		return i.builtinInputi(call.Args, env)
	default:
		return nil, runtime.NameErrorf("Function %s has not been defined", call.Name)
	}
}

// builtinPrint evaluates its arguments left to right, concatenates their
// textual forms with no separator, and writes exactly one line. Nothing is
// written if any argument fails.
func (i *Interpreter) builtinPrint(args []ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	var line strings.Builder
	for _, arg := range args {
		val, err := i.evaluateExpression(arg, env)
		if err != nil {
			return nil, err
		}
		line.WriteString(runtime.Display(val))
	}
	if err := i.writeLine(line.String()); err != nil {
		return nil, err
	}
	return runtime.NullValue{}, nil
}

// builtinInputi takes an optional prompt argument, reads one token from
// the input channel, and returns it as an integer. The read is the sole
// point where execution blocks.
func (i *Interpreter) builtinInputi(args []ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	if len(args) > 1 {
		return nil, runtime.NameErrorf("No inputi() function found that takes > 1 parameter")
	}
	if len(args) == 1 {
		prompt, err := i.evaluateExpression(args[0], env)
		if err != nil {
			return nil, err
		}
		if err := i.writeLine(runtime.Display(prompt)); err != nil {
			return nil, err
		}
	}
	return i.readInt()
}

func (i *Interpreter) writeLine(line string) error {
	if _, err := fmt.Fprintln(i.out, line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (i *Interpreter) readInt() (runtime.Value, error) {
	if !i.in.Scan() {
		if err := i.in.Err(); err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return nil, fmt.Errorf("read input: no token available")
	}
	token := i.in.Text()
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("inputi: %q is not an integer", token)
	}
	return runtime.IntValue{Val: n}, nil
}
