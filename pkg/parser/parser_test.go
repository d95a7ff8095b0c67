package parser

import (
	"testing"

	"brio/interpreter-go/pkg/ast"
)

func parseMain(t *testing.T, src string) *ast.FunctionDefinition {
	t.Helper()
	program, err := Parse(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(program.Functions) != 1 {
		t.Fatalf("expected one function, got %d", len(program.Functions))
	}
	return program.Functions[0]
}

func TestParseDeclarationAssignmentCall(t *testing.T) {
	fn := parseMain(t, `def main() { var x; x = 5; print(x); }`)
	if fn.Name != "main" || len(fn.Params) != 0 {
		t.Fatalf("unexpected function header %+v", fn)
	}
	if len(fn.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(fn.Statements))
	}
	decl, ok := fn.Statements[0].(*ast.VarDeclaration)
	if !ok || decl.Name != "x" {
		t.Fatalf("unexpected statement %#v", fn.Statements[0])
	}
	assign, ok := fn.Statements[1].(*ast.Assignment)
	if !ok || assign.Var != "x" {
		t.Fatalf("unexpected statement %#v", fn.Statements[1])
	}
	lit, ok := assign.Expression.(*ast.IntLiteral)
	if !ok || lit.Value != 5 {
		t.Fatalf("unexpected assignment value %#v", assign.Expression)
	}
	call, ok := fn.Statements[2].(*ast.CallExpression)
	if !ok || call.Name != "print" || len(call.Args) != 1 {
		t.Fatalf("unexpected statement %#v", fn.Statements[2])
	}
}

func TestParseBinaryIsLeftAssociative(t *testing.T) {
	fn := parseMain(t, `def main() { print(1 + 2 - 3); }`)
	call := fn.Statements[0].(*ast.CallExpression)
	outer, ok := call.Args[0].(*ast.BinaryExpression)
	if !ok || outer.Op != ast.OpSubtract {
		t.Fatalf("unexpected expression %#v", call.Args[0])
	}
	inner, ok := outer.Op1.(*ast.BinaryExpression)
	if !ok || inner.Op != ast.OpAdd {
		t.Fatalf("expected (1 + 2) on the left, got %#v", outer.Op1)
	}
	if lit, ok := outer.Op2.(*ast.IntLiteral); !ok || lit.Value != 3 {
		t.Fatalf("unexpected right operand %#v", outer.Op2)
	}
}

func TestParseParenthesesOverrideAssociativity(t *testing.T) {
	fn := parseMain(t, `def main() { var x; x = (5 + 3) - 2; }`)
	assign := fn.Statements[1].(*ast.Assignment)
	outer, ok := assign.Expression.(*ast.BinaryExpression)
	if !ok || outer.Op != ast.OpSubtract {
		t.Fatalf("unexpected expression %#v", assign.Expression)
	}
	if _, ok := outer.Op1.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected grouped sum on the left, got %#v", outer.Op1)
	}
}

func TestParseCallArguments(t *testing.T) {
	fn := parseMain(t, `def main() { print("x", 1, inputi("n"), y); }`)
	call := fn.Statements[0].(*ast.CallExpression)
	if len(call.Args) != 4 {
		t.Fatalf("expected 4 arguments, got %d", len(call.Args))
	}
	inner, ok := call.Args[2].(*ast.CallExpression)
	if !ok || inner.Name != "inputi" || len(inner.Args) != 1 {
		t.Fatalf("unexpected nested call %#v", call.Args[2])
	}
	if ref, ok := call.Args[3].(*ast.VariableReference); !ok || ref.Name != "y" {
		t.Fatalf("unexpected argument %#v", call.Args[3])
	}
}

func TestParseMultipleFunctions(t *testing.T) {
	program, err := Parse(`
def helper() { print("h"); }
def main() { print("m"); }
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(program.Functions) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(program.Functions))
	}
	if program.Functions[0].Name != "helper" || program.Functions[1].Name != "main" {
		t.Fatalf("unexpected function names %q, %q",
			program.Functions[0].Name, program.Functions[1].Name)
	}
}

func TestParseErrorsCarryPositions(t *testing.T) {
	cases := []struct {
		src  string
		line int
	}{
		{`def main() { var ; }`, 1},
		{"def main() {\n x = ; \n}", 2},
		{`def main() { print(1 }`, 1},
		{`main() {}`, 1},
		{`def main() { var x }`, 1},
	}
	for _, c := range cases {
		_, err := Parse(c.src)
		if err == nil {
			t.Fatalf("expected parse error for %q", c.src)
		}
		pe, ok := err.(*ParseError)
		if !ok {
			t.Fatalf("expected *ParseError for %q, got %T", c.src, err)
		}
		if pe.Line != c.line {
			t.Fatalf("error for %q at line %d, want %d", c.src, pe.Line, c.line)
		}
	}
}

func TestParseEmptySourceFails(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatalf("expected error for empty source")
	}
}

func TestParseIntegerOutOfRange(t *testing.T) {
	if _, err := Parse(`def main() { print(99999999999999999999); }`); err == nil {
		t.Fatalf("expected out-of-range error")
	}
}
