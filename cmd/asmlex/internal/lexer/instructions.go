package lexer

// An InstructionSet holds the recognized instruction mnemonics. It is
// supplied by the caller, matched exactly and case-sensitively, and never
// modified by this package.
type InstructionSet map[string]struct{}

func NewInstructionSet(mnemonics ...string) InstructionSet {
	set := make(InstructionSet, len(mnemonics))
	for _, m := range mnemonics {
		set[m] = struct{}{}
	}
	return set
}

func (s InstructionSet) Has(mnemonic string) bool {
	_, has := s[mnemonic]
	return has
}
