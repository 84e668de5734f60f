package lexer

import "fmt"

// A Token is one classified lexeme along with the 1-based line and column
// of its first character in the source. Tokens are immutable once created.
type Token struct {
	tokenType TokenType
	lexeme    string
	line      int
	column    int
}

func (t *Token) Is(ty ...TokenType) bool {
	if t == nil {
		return false
	}
	for i := range ty {
		if ty[i] == t.tokenType {
			return true
		}
	}
	return false
}

func (t *Token) Type() TokenType {
	return t.tokenType
}

// Lexeme returns the exact matched text, or the line terminator literal
// for end-of-line tokens.
func (t *Token) Lexeme() string {
	return t.lexeme
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Column() int {
	return t.column
}

func (t *Token) String() string {
	return fmt.Sprintf("Token: %q, Type: %s, Line: %d, Column: %d",
		t.lexeme, t.tokenType, t.line, t.column)
}

type TokenType int

const (
	TypeError = TokenType(iota - 1)
	TypeUndefined

	TypeInstruction
	TypeRegister
	TypeImmediate
	TypeLabel
	TypeLineEnd
)

func (t TokenType) String() string {
	switch t {
	case TypeInstruction:
		return "INSTRUCTION"
	case TypeRegister:
		return "REGISTER"
	case TypeImmediate:
		return "IMMEDIATE"
	case TypeLabel:
		return "LABEL"
	case TypeLineEnd:
		return "END_OF_LINE"
	case TypeError:
		return "ERROR"

	case TypeUndefined:
		return "[UNDEFINED TOKEN]"

	}
	panic("unknown token type")
}
