package lexer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExhausted reports a peek or read against an empty stream. It signals
// consumer misuse, not bad source text.
var ErrExhausted = errors.New("no tokens available")

// A TokenStream is the ordered output of one full scan, owned by a single
// consumer and drained from the front. No locking: concurrent use is not
// part of its contract.
type TokenStream struct {
	tokens []Token
}

func (s *TokenStream) HasMoreTokens() bool {
	return len(s.tokens) > 0
}

// PeekNextToken returns the front token without consuming it. The token is
// borrowed: it remains part of the stream.
func (s *TokenStream) PeekNextToken() (*Token, error) {
	if len(s.tokens) == 0 {
		return nil, fmt.Errorf("peeking token: %w", ErrExhausted)
	}
	return &s.tokens[0], nil
}

// GetNextToken removes and returns the front token. The returned token is
// the caller's and stays valid after the stream is discarded.
func (s *TokenStream) GetNextToken() (Token, error) {
	if len(s.tokens) == 0 {
		return Token{}, fmt.Errorf("reading token: %w", ErrExhausted)
	}
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	return tok, nil
}

// Dump renders every remaining token, one line each in stream order,
// without consuming anything.
func (s *TokenStream) Dump() string {
	buf := new(strings.Builder)
	for i := range s.tokens {
		buf.WriteString(s.tokens[i].String())
		buf.WriteByte('\n')
	}
	return buf.String()
}
