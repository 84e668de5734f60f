package lexer

import (
	"errors"
	"strings"
	"testing"
)

func testStream(t *testing.T, source string, mnemonics ...string) *TokenStream {
	t.Helper()
	stream, err := Scan(strings.NewReader(source), NewInstructionSet(mnemonics...))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	return stream
}

func TestTokenStream_Consume(t *testing.T) {
	stream := testStream(t, "ADD x1", "ADD")

	if !stream.HasMoreTokens() {
		t.Fatal("fresh stream reports no tokens")
	}

	peeked, err := stream.PeekNextToken()
	if err != nil {
		t.Fatalf("PeekNextToken() error = %v", err)
	}
	if !peeked.Is(TypeInstruction) || peeked.Lexeme() != "ADD" {
		t.Errorf("peeked %s", peeked)
	}

	// peek must not consume
	got, err := stream.GetNextToken()
	if err != nil {
		t.Fatalf("GetNextToken() error = %v", err)
	}
	if got.Lexeme() != peeked.Lexeme() || got.Type() != peeked.Type() {
		t.Errorf("peek and get disagree: %s vs %s", peeked, &got)
	}

	var drained []Token
	for stream.HasMoreTokens() {
		tok, err := stream.GetNextToken()
		if err != nil {
			t.Fatalf("GetNextToken() error = %v", err)
		}
		drained = append(drained, tok)
	}

	// x1 and the terminator
	if len(drained) != 2 {
		t.Errorf("drained %d tokens, want 2", len(drained))
	}

	// popped tokens are the caller's, valid without the stream
	stream = nil
	if drained[0].Lexeme() != "x1" || !drained[0].Is(TypeRegister) {
		t.Errorf("popped token lost its value: %s", &drained[0])
	}
}

func TestTokenStream_Exhausted(t *testing.T) {
	stream := testStream(t, "")

	if stream.HasMoreTokens() {
		t.Error("empty stream reports tokens")
	}

	if _, err := stream.PeekNextToken(); !errors.Is(err, ErrExhausted) {
		t.Errorf("PeekNextToken() error = %v, want ErrExhausted", err)
	}
	if _, err := stream.GetNextToken(); !errors.Is(err, ErrExhausted) {
		t.Errorf("GetNextToken() error = %v, want ErrExhausted", err)
	}
}

func TestTokenStream_Dump(t *testing.T) {
	stream := testStream(t, "ADD x1, 5", "ADD")

	const want = `Token: "ADD", Type: INSTRUCTION, Line: 1, Column: 1
Token: "x1", Type: REGISTER, Line: 1, Column: 5
Token: "5", Type: IMMEDIATE, Line: 1, Column: 9
Token: "\n", Type: END_OF_LINE, Line: 1, Column: 9
`

	if got := stream.Dump(); got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}

	// read-only and repeatable
	before := stream.HasMoreTokens()
	if again := stream.Dump(); again != want {
		t.Errorf("second Dump() = %q", again)
	}
	if stream.HasMoreTokens() != before {
		t.Error("Dump() changed stream state")
	}

	// after consuming, the dump shrinks from the front
	if _, err := stream.GetNextToken(); err != nil {
		t.Fatalf("GetNextToken() error = %v", err)
	}
	if got := stream.Dump(); got != want[strings.Index(want, "\n")+1:] {
		t.Errorf("Dump() after pop = %q", got)
	}
}
