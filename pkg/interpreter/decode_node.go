package interpreter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"brio/interpreter-go/pkg/ast"
)

// DecodeProgram converts an externally produced JSON AST into typed nodes.
// The wire form is a tree of tagged objects: a "type" discriminant plus the
// attributes of that kind. Anything outside the closed vocabulary, or a
// kind with missing or mistyped attributes, is a structural error.
func DecodeProgram(data []byte) (*ast.Program, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	node, err := decodeNode(root)
	if err != nil {
		return nil, err
	}
	program, ok := node.(*ast.Program)
	if !ok {
		return nil, fmt.Errorf("expected Program root, got %s", node.NodeType())
	}
	return program, nil
}

func decodeNode(node map[string]any) (ast.Node, error) {
	typ, _ := node["type"].(string)
	switch typ {
	case "Program":
		functionsVal, _ := node["functions"].([]any)
		functions := make([]*ast.FunctionDefinition, 0, len(functionsVal))
		for _, raw := range functionsVal {
			child, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("invalid function entry %T", raw)
			}
			fn, err := decodeFunctionDefinition(child)
			if err != nil {
				return nil, err
			}
			functions = append(functions, fn)
		}
		return ast.NewProgram(functions), nil
	case "FunctionDefinition":
		return decodeFunctionDefinition(node)
	case "VarDeclaration":
		name, err := stringAttr(node, "name")
		if err != nil {
			return nil, err
		}
		return ast.NewVarDeclaration(name), nil
	case "Assignment":
		variable, err := stringAttr(node, "var")
		if err != nil {
			return nil, err
		}
		expr, err := decodeExpressionAttr(node, "expression")
		if err != nil {
			return nil, err
		}
		return ast.NewAssignment(variable, expr), nil
	case "IntLiteral":
		val, err := intAttr(node, "val")
		if err != nil {
			return nil, err
		}
		return ast.NewIntLiteral(val), nil
	case "StringLiteral":
		val, ok := node["val"].(string)
		if !ok {
			return nil, fmt.Errorf("string literal missing val")
		}
		return ast.NewStringLiteral(val), nil
	case "VariableReference":
		name, err := stringAttr(node, "name")
		if err != nil {
			return nil, err
		}
		return ast.NewVariableReference(name), nil
	case "CallExpression":
		name, err := stringAttr(node, "name")
		if err != nil {
			return nil, err
		}
		argsVal, _ := node["args"].([]any)
		args := make([]ast.Expression, 0, len(argsVal))
		for _, raw := range argsVal {
			arg, err := decodeExpression(raw)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return ast.NewCallExpression(name, args), nil
	case "BinaryExpression":
		opStr, err := stringAttr(node, "op")
		if err != nil {
			return nil, err
		}
		op := ast.BinaryOperator(opStr)
		if op != ast.OpAdd && op != ast.OpSubtract {
			return nil, fmt.Errorf("unsupported binary operator %q", opStr)
		}
		op1, err := decodeExpressionAttr(node, "op1")
		if err != nil {
			return nil, err
		}
		op2, err := decodeExpressionAttr(node, "op2")
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpression(op, op1, op2), nil
	default:
		return nil, fmt.Errorf("unknown node type %q", typ)
	}
}

func decodeFunctionDefinition(node map[string]any) (*ast.FunctionDefinition, error) {
	if typ, _ := node["type"].(string); typ != "FunctionDefinition" {
		return nil, fmt.Errorf("expected FunctionDefinition, got %q", typ)
	}
	name, err := stringAttr(node, "name")
	if err != nil {
		return nil, err
	}
	var params []string
	if paramsVal, ok := node["params"].([]any); ok {
		params = make([]string, 0, len(paramsVal))
		for _, raw := range paramsVal {
			p, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("invalid parameter entry %T", raw)
			}
			params = append(params, p)
		}
	}
	stmtsVal, _ := node["statements"].([]any)
	statements := make([]ast.Statement, 0, len(stmtsVal))
	for _, raw := range stmtsVal {
		child, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid statement entry %T", raw)
		}
		decoded, err := decodeNode(child)
		if err != nil {
			return nil, err
		}
		stmt, ok := decoded.(ast.Statement)
		if !ok {
			return nil, fmt.Errorf("%s is not a statement", decoded.NodeType())
		}
		statements = append(statements, stmt)
	}
	return ast.NewFunctionDefinition(name, params, statements), nil
}

func decodeExpression(raw any) (ast.Expression, error) {
	child, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid expression entry %T", raw)
	}
	decoded, err := decodeNode(child)
	if err != nil {
		return nil, err
	}
	expr, ok := decoded.(ast.Expression)
	if !ok {
		return nil, fmt.Errorf("%s is not an expression", decoded.NodeType())
	}
	return expr, nil
}

func decodeExpressionAttr(node map[string]any, attr string) (ast.Expression, error) {
	raw, ok := node[attr]
	if !ok {
		return nil, fmt.Errorf("%s node missing %s", node["type"], attr)
	}
	return decodeExpression(raw)
}

func stringAttr(node map[string]any, attr string) (string, error) {
	val, ok := node[attr].(string)
	if !ok || val == "" {
		return "", fmt.Errorf("%s node missing %s", node["type"], attr)
	}
	return val, nil
}

func intAttr(node map[string]any, attr string) (int64, error) {
	switch val := node[attr].(type) {
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, fmt.Errorf("invalid integer literal %q: %w", val.String(), err)
		}
		return n, nil
	case float64:
		// Tolerated for decoders that did not preserve json.Number.
		n := int64(val)
		if float64(n) != val {
			return 0, fmt.Errorf("invalid integer literal %v", val)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s node missing %s", node["type"], attr)
	}
}
