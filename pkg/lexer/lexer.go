// Package lexer implements the Brio tokenizer.
package lexer

import "fmt"

// TokenType identifies the type of a lexer token.
type TokenType int

const (
	// Keywords
	TokDef TokenType = iota
	TokVar

	// Literals
	TokIntLit
	TokStringLit

	// Identifiers
	TokIdent

	// Punctuation
	TokLBrace    // {
	TokRBrace    // }
	TokLParen    // (
	TokRParen    // )
	TokSemicolon // ;
	TokComma     // ,
	TokEquals    // =
	TokPlus      // +
	TokMinus     // -

	// Special
	TokEOF
)

// Token represents a single lexer token.
type Token struct {
	Type  TokenType
	Value string
	Line  int
	Col   int
}

var keywords = map[string]TokenType{
	"def": TokDef,
	"var": TokVar,
}

// LexError reports a tokenization failure with its source position.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

type scanner struct {
	source string
	pos    int
	line   int
	col    int
}

func newScanner(source string) *scanner {
	return &scanner{source: source, line: 1, col: 1}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.source)
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.pos]
}

func (s *scanner) peekAt(offset int) byte {
	p := s.pos + offset
	if p >= len(s.source) {
		return 0
	}
	return s.source[p]
}

func (s *scanner) advance() byte {
	ch := s.source[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

func (s *scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		ch := s.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			s.advance()
		} else if ch == '/' && s.peekAt(1) == '/' {
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
		} else {
			break
		}
	}
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}

func (s *scanner) lexError(line, col int, msg string) *LexError {
	return &LexError{Line: line, Col: col, Msg: msg}
}

func (s *scanner) scanString() (Token, error) {
	startLine, startCol := s.line, s.col
	s.advance() // consume opening "

	startPos := s.pos
	for !s.atEnd() {
		ch := s.peek()
		if ch == '"' {
			text := s.source[startPos:s.pos]
			s.advance() // consume closing "
			return Token{Type: TokStringLit, Value: text, Line: startLine, Col: startCol}, nil
		}
		if ch == '\n' {
			return Token{}, s.lexError(startLine, startCol, "unterminated string literal")
		}
		s.advance()
	}
	return Token{}, s.lexError(startLine, startCol, "unterminated string literal")
}

func (s *scanner) scanNumber() Token {
	startLine, startCol := s.line, s.col
	startPos := s.pos
	for !s.atEnd() && isDigit(s.peek()) {
		s.advance()
	}
	return Token{Type: TokIntLit, Value: s.source[startPos:s.pos], Line: startLine, Col: startCol}
}

func (s *scanner) scanIdentOrKeyword() Token {
	startLine, startCol := s.line, s.col
	startPos := s.pos
	for !s.atEnd() && isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.source[startPos:s.pos]
	if typ, ok := keywords[text]; ok {
		return Token{Type: typ, Value: text, Line: startLine, Col: startCol}
	}
	return Token{Type: TokIdent, Value: text, Line: startLine, Col: startCol}
}

// Tokenize scans source into a token slice terminated by a TokEOF token.
func Tokenize(source string) ([]Token, error) {
	s := newScanner(source)
	var tokens []Token
	for {
		s.skipWhitespaceAndComments()
		if s.atEnd() {
			break
		}
		ch := s.peek()
		switch {
		case ch == '"':
			tok, err := s.scanString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case isDigit(ch):
			tokens = append(tokens, s.scanNumber())
		case isAlpha(ch):
			tokens = append(tokens, s.scanIdentOrKeyword())
		default:
			line, col := s.line, s.col
			s.advance()
			var typ TokenType
			switch ch {
			case '{':
				typ = TokLBrace
			case '}':
				typ = TokRBrace
			case '(':
				typ = TokLParen
			case ')':
				typ = TokRParen
			case ';':
				typ = TokSemicolon
			case ',':
				typ = TokComma
			case '=':
				typ = TokEquals
			case '+':
				typ = TokPlus
			case '-':
				typ = TokMinus
			default:
				return nil, s.lexError(line, col, fmt.Sprintf("unexpected character %q", ch))
			}
			tokens = append(tokens, Token{Type: typ, Value: string(ch), Line: line, Col: col})
		}
	}
	tokens = append(tokens, Token{Type: TokEOF, Line: s.line, Col: s.col})
	return tokens, nil
}
