package interpreter

import (
	"strings"
	"testing"
)

const sampleProgramJSON = `{
  "type": "Program",
  "functions": [
    {
      "type": "FunctionDefinition",
      "name": "main",
      "statements": [
        {"type": "VarDeclaration", "name": "x"},
        {
          "type": "Assignment",
          "var": "x",
          "expression": {
            "type": "BinaryExpression",
            "op": "-",
            "op1": {
              "type": "BinaryExpression",
              "op": "+",
              "op1": {"type": "IntLiteral", "val": 5},
              "op2": {"type": "IntLiteral", "val": 3}
            },
            "op2": {"type": "IntLiteral", "val": 2}
          }
        },
        {
          "type": "CallExpression",
          "name": "print",
          "args": [
            {"type": "StringLiteral", "val": "x is "},
            {"type": "VariableReference", "name": "x"}
          ]
        }
      ]
    }
  ]
}`

func TestDecodeProgramRoundTrip(t *testing.T) {
	program, err := DecodeProgram([]byte(sampleProgramJSON))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	out, err := runProgram(t, program, "")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "x is 6\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestDecodeRejectsUnknownNodeType(t *testing.T) {
	_, err := DecodeProgram([]byte(`{"type": "WhileLoop"}`))
	if err == nil || !strings.Contains(err.Error(), "unknown node type") {
		t.Fatalf("expected unknown node type error, got %v", err)
	}
}

func TestDecodeRejectsNonProgramRoot(t *testing.T) {
	_, err := DecodeProgram([]byte(`{"type": "IntLiteral", "val": 1}`))
	if err == nil || !strings.Contains(err.Error(), "expected Program root") {
		t.Fatalf("expected root error, got %v", err)
	}
}

func TestDecodeRejectsMissingAttributes(t *testing.T) {
	cases := []string{
		`{"type": "Program", "functions": [{"type": "FunctionDefinition", "statements": []}]}`,
		`{"type": "Program", "functions": [{"type": "FunctionDefinition", "name": "main",
		   "statements": [{"type": "VarDeclaration"}]}]}`,
		`{"type": "Program", "functions": [{"type": "FunctionDefinition", "name": "main",
		   "statements": [{"type": "Assignment", "var": "x"}]}]}`,
		`{"type": "Program", "functions": [{"type": "FunctionDefinition", "name": "main",
		   "statements": [{"type": "IntLiteral"}]}]}`,
	}
	for _, src := range cases {
		if _, err := DecodeProgram([]byte(src)); err == nil {
			t.Fatalf("expected structural error for %s", src)
		}
	}
}

func TestDecodeRejectsFractionalIntLiteral(t *testing.T) {
	src := `{"type": "Program", "functions": [{"type": "FunctionDefinition", "name": "main",
	  "statements": [{"type": "CallExpression", "name": "print",
	    "args": [{"type": "IntLiteral", "val": 1.5}]}]}]}`
	if _, err := DecodeProgram([]byte(src)); err == nil {
		t.Fatalf("expected invalid integer literal error")
	}
}

func TestDecodeRejectsUnsupportedOperator(t *testing.T) {
	src := `{"type": "Program", "functions": [{"type": "FunctionDefinition", "name": "main",
	  "statements": [{"type": "CallExpression", "name": "print",
	    "args": [{"type": "BinaryExpression", "op": "*",
	      "op1": {"type": "IntLiteral", "val": 2},
	      "op2": {"type": "IntLiteral", "val": 3}}]}]}]}`
	_, err := DecodeProgram([]byte(src))
	if err == nil || !strings.Contains(err.Error(), "unsupported binary operator") {
		t.Fatalf("expected operator error, got %v", err)
	}
}
