// Package parser implements the Brio recursive-descent parser.
package parser

import (
	"fmt"
	"strconv"

	"brio/interpreter-go/pkg/ast"
	"brio/interpreter-go/pkg/lexer"
)

// ParseError reports the first syntax failure with its source position.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse tokenizes source and parses it into a program AST.
func Parse(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.parseProgram()
}

func (p *parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *parser) peek() lexer.TokenType {
	return p.current().Type
}

func (p *parser) peekAt(offset int) lexer.TokenType {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return lexer.TokEOF
	}
	return p.tokens[idx].Type
}

func (p *parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(typ lexer.TokenType, what string) (lexer.Token, error) {
	tok := p.current()
	if tok.Type != typ {
		return tok, p.errorAt(tok, fmt.Sprintf("expected %s, got %q", what, tok.Value))
	}
	return p.advance(), nil
}

func (p *parser) errorAt(tok lexer.Token, msg string) *ParseError {
	return &ParseError{Line: tok.Line, Col: tok.Col, Msg: msg}
}

func (p *parser) parseProgram() (*ast.Program, error) {
	var functions []*ast.FunctionDefinition
	for p.peek() != lexer.TokEOF {
		fn, err := p.parseFunctionDefinition()
		if err != nil {
			return nil, err
		}
		functions = append(functions, fn)
	}
	if len(functions) == 0 {
		return nil, p.errorAt(p.current(), "expected at least one function definition")
	}
	return ast.NewProgram(functions), nil
}

func (p *parser) parseFunctionDefinition() (*ast.FunctionDefinition, error) {
	if _, err := p.expect(lexer.TokDef, "'def'"); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.TokIdent, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLParen, "'('"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokRParen, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokLBrace, "'{'"); err != nil {
		return nil, err
	}
	var statements []ast.Statement
	for p.peek() != lexer.TokRBrace && p.peek() != lexer.TokEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.expect(lexer.TokRBrace, "'}'"); err != nil {
		return nil, err
	}
	return ast.NewFunctionDefinition(name.Value, nil, statements), nil
}

func (p *parser) parseStatement() (ast.Statement, error) {
	var stmt ast.Statement
	switch {
	case p.peek() == lexer.TokVar:
		p.advance()
		name, err := p.expect(lexer.TokIdent, "variable name")
		if err != nil {
			return nil, err
		}
		stmt = ast.NewVarDeclaration(name.Value)
	case p.peek() == lexer.TokIdent && p.peekAt(1) == lexer.TokEquals:
		name := p.advance()
		p.advance() // consume '='
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt = ast.NewAssignment(name.Value, expr)
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt = expr
	}
	if _, err := p.expect(lexer.TokSemicolon, "';'"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseExpression handles left-associative '+'/'-' chains over terms.
func (p *parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek() == lexer.TokPlus || p.peek() == lexer.TokMinus {
		op := ast.OpAdd
		if p.advance().Type == lexer.TokMinus {
			op = ast.OpSubtract
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op, left, right)
	}
	return left, nil
}

func (p *parser) parseTerm() (ast.Expression, error) {
	tok := p.current()
	switch tok.Type {
	case lexer.TokIntLit:
		p.advance()
		val, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, p.errorAt(tok, fmt.Sprintf("integer literal %q out of range", tok.Value))
		}
		return ast.NewIntLiteral(val), nil
	case lexer.TokStringLit:
		p.advance()
		return ast.NewStringLiteral(tok.Value), nil
	case lexer.TokIdent:
		p.advance()
		if p.peek() == lexer.TokLParen {
			return p.parseCallArgs(tok.Value)
		}
		return ast.NewVariableReference(tok.Value), nil
	case lexer.TokLParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokRParen, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, p.errorAt(tok, fmt.Sprintf("expected expression, got %q", tok.Value))
	}
}

func (p *parser) parseCallArgs(name string) (ast.Expression, error) {
	p.advance() // consume '('
	var args []ast.Expression
	if p.peek() != lexer.TokRParen {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek() != lexer.TokComma {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(lexer.TokRParen, "')'"); err != nil {
		return nil, err
	}
	return ast.NewCallExpression(name, args), nil
}
