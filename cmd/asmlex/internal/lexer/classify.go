package lexer

// Classify maps a single matched lexeme to its token type. It is a pure
// function of the lexeme and the instruction set: the same inputs always
// produce the same result, regardless of where the lexeme appeared.
//
// Precedence, first match wins:
//  1. exact member of the instruction set
//  2. register: 'x' followed by decimal digits, value 0-31
//  3. immediate: binary "0b...", hex "0x...", or plain decimal
//  4. label: ends in ':' with no underscore before it
//  5. error
func Classify(lexeme string, instructions InstructionSet) TokenType {
	if instructions.Has(lexeme) {
		return TypeInstruction
	}
	if isRegister(lexeme) {
		return TypeRegister
	}
	if isImmediate(lexeme) {
		return TypeImmediate
	}
	if isLabel(lexeme) {
		return TypeLabel
	}
	return TypeError
}

const maxRegister = 31

func isRegister(s string) bool {
	if len(s) < 2 || s[0] != 'x' {
		return false
	}

	value := 0
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		value = value*10 + int(c-'0')

		// bail as soon as the running value leaves the register range,
		// so long digit runs never overflow the accumulator
		if value > maxRegister {
			return false
		}
	}
	return true
}

func isImmediate(s string) bool {
	if len(s) == 0 {
		return false
	}

	// a matched base prefix commits the lexeme to that base: "0b102" is
	// not re-tested as decimal, it is simply not an immediate
	if len(s) > 2 && s[0] == '0' && s[1] == 'b' {
		for i := 2; i < len(s); i++ {
			if s[i] != '0' && s[i] != '1' {
				return false
			}
		}
		return true
	}

	if len(s) > 2 && s[0] == '0' && s[1] == 'x' {
		for i := 2; i < len(s); i++ {
			if !isHexDigit(s[i]) {
				return false
			}
		}
		return true
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isLabel recognizes colon-terminated identifiers without underscores.
// The scanner's word pattern never captures a trailing ':', so this only
// fires for lexemes handed to Classify directly; colon-terminated names in
// scanned source lose the colon before classification and land on ERROR.
func isLabel(s string) bool {
	if len(s) == 0 || s[len(s)-1] != ':' {
		return false
	}
	for i := 0; i < len(s)-1; i++ {
		if s[i] == '_' {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'f' ||
		c >= 'A' && c <= 'F'
}
