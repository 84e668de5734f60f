package main

import "testing"

func Test_parseInstructionTable(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		has    []string
		hasNot []string
	}{
		{
			name:  "single line",
			input: "ADD SUB",
			has:   []string{"ADD", "SUB"},
		},
		{
			name:   "comments discarded",
			input:  "# header\nMOV HLT # trailing\n#NOP",
			has:    []string{"MOV", "HLT"},
			hasNot: []string{"NOP", "#", "header"},
		},
		{
			name:   "empty table",
			input:  "\n\n# nothing here\n",
			hasNot: []string{"ADD"},
		},
		{
			name:  "mixed whitespace",
			input: "ADD\tSUB\n  JAL  ",
			has:   []string{"ADD", "SUB", "JAL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := parseInstructionTable(tt.input)

			for _, m := range tt.has {
				if !set.Has(m) {
					t.Errorf("table is missing %q", m)
				}
			}
			for _, m := range tt.hasNot {
				if set.Has(m) {
					t.Errorf("table unexpectedly contains %q", m)
				}
			}
		})
	}
}
