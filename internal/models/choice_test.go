package models

import "testing"

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in   string
		want Choice
	}{
		{"1", ChoiceViewBalance},
		{"2", ChoiceCredit},
		{"3", ChoiceDebit},
		{"4", ChoiceExit},
		{" 4 ", ChoiceExit},
		{"0", ChoiceUnrecognized},
		{"5", ChoiceUnrecognized},
		{"999", ChoiceUnrecognized},
		{"-1", ChoiceUnrecognized},
		{"2abc", ChoiceUnrecognized},
		{"1.0", ChoiceUnrecognized},
		{"", ChoiceUnrecognized},
		{"exit", ChoiceUnrecognized},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseChoice(tt.in); got != tt.want {
				t.Fatalf("ParseChoice(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
