package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// terminator is the lexeme carried by every end-of-line token.
const terminator = "\n"

// A Lexer scans assembly source into a TokenStream. The zero value is not
// usable; construct one with New so it carries an instruction set.
type Lexer struct {
	instructions InstructionSet
}

func New(instructions InstructionSet) *Lexer {
	return &Lexer{
		instructions: instructions,
	}
}

// Scan is a convenience for a one-shot scan with the given instruction set.
func Scan(source io.Reader, instructions InstructionSet) (*TokenStream, error) {
	return New(instructions).Run(source)
}

// Run tokenizes the whole source before returning. The source is only read
// during the call; every token owns its lexeme, so the returned stream stays
// valid after the source is closed or discarded. A read failure aborts the
// scan with no partial stream.
func (l *Lexer) Run(source io.Reader) (*TokenStream, error) {
	if source == nil {
		return nil, errors.New("no source to scan")
	}

	var tokens []Token

	scan := bufio.NewScanner(source)
	line := 0
	for scan.Scan() {
		line++
		tokens = l.scanLine(tokens, scan.Text(), line)
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("error reading source: %w", err)
	}

	return &TokenStream{tokens: tokens}, nil
}

// scanLine appends one token per maximal word-character run on the line,
// left to right, then exactly one end-of-line token. Anything outside
// [A-Za-z0-9_] only separates runs and is never part of a lexeme.
func (l *Lexer) scanLine(tokens []Token, text string, lineNo int) []Token {
	column := 1

	for i := 0; i < len(text); {
		if !isWordByte(text[i]) {
			i++
			continue
		}

		start := i
		for i < len(text) && isWordByte(text[i]) {
			i++
		}

		lexeme := text[start:i]
		column = start + 1
		tokens = append(tokens, Token{
			tokenType: Classify(lexeme, l.instructions),
			lexeme:    lexeme,
			line:      lineNo,
			column:    column,
		})
	}

	// the terminator keeps the column of the last run, or 1 on a line
	// with no runs at all
	return append(tokens, Token{
		tokenType: TypeLineEnd,
		lexeme:    terminator,
		line:      lineNo,
		column:    column,
	})
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '_'
}
