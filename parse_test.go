package gocalc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "42",
			want:  "42",
		},
		{
			input: "2+6*6",
			want:  "(2+(6*6))",
		},
		{
			input: "(2+6)*6",
			want:  "((2+6)*6)",
		},
		{
			input: "1-2-3",
			want:  "((1-2)-3)",
		},
		{
			input: "7/2",
			want:  "(7/2)",
		},
		{
			input: "((7))",
			want:  "7",
		},
		{
			input: "1+2*3-4/2",
			want:  "((1+(2*3))-(4/2))",
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		node, err := Parse(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		got := node.String()

		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseTree(t *testing.T) {
	got, err := Parse("1+2*3")
	if err != nil {
		t.Fatal(err)
	}
	want := &Node{
		Type: NodeAdd,
		Left: &Node{Type: NodeNum, Val: 1},
		Right: &Node{
			Type:  NodeMul,
			Left:  &Node{Type: NodeNum, Val: 2},
			Right: &Node{Type: NodeNum, Val: 3},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf(diff)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{
			input: "",
			want:  ErrUnexpectedEnd,
		},
		{
			input: "1+",
			want:  ErrUnexpectedEnd,
		},
		{
			input: "(1+2",
			want:  ErrUnmatchedParen,
		},
		{
			input: "1+2)",
			want:  ErrTrailingTokens,
		},
		{
			input: "(1+2)3",
			want:  ErrTrailingTokens,
		},
		{
			input: "1++2",
			want:  ErrMalformedNumber,
		},
		{
			input: "()",
			want:  ErrMalformedNumber,
		},
		{
			input: ")(",
			want:  ErrMalformedNumber,
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		_, err := Parse(test.input)
		if err == nil {
			t.Errorf("want error for %q but got none", test.input)
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("want %v for %q but got %v", test.want, test.input, err)
		}
	}
}

func TestParserPos(t *testing.T) {
	p := NewParser("(1+2)*3")
	if _, err := p.Parse(); err != nil {
		t.Fatal(err)
	}
	if p.Pos() != 7 {
		t.Errorf("want cursor at end of stream but got %d", p.Pos())
	}
}
