package parser

import (
	"strings"
	"testing"
)

func TestLineSourceStripsBOMAndTrailingComma(t *testing.T) {
	in := "\ufeff{\"a\":\"1\"},\r\n{\"b\":\"2\"},\n"
	src := newLineSource(strings.NewReader(in))

	line, n, ok := src.Next()
	if !ok {
		t.Fatal("expected first line")
	}
	if line != `{"a":"1"}` {
		t.Errorf("first line = %q", line)
	}
	if n != 1 {
		t.Errorf("first line number = %d, want 1", n)
	}

	line, n, ok = src.Next()
	if !ok {
		t.Fatal("expected second line")
	}
	if line != `{"b":"2"}` {
		t.Errorf("second line = %q", line)
	}
	if n != 2 {
		t.Errorf("second line number = %d, want 2", n)
	}

	if _, _, ok := src.Next(); ok {
		t.Error("expected end of input")
	}
	if err := src.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLineSourceSkipsBlankLinesButCountsThem(t *testing.T) {
	in := "{\"a\":\"1\"}\n\n   \n{\"b\":\"2\"}\n"
	src := newLineSource(strings.NewReader(in))

	_, n1, _ := src.Next()
	_, n2, ok := src.Next()
	if !ok {
		t.Fatal("expected two lines")
	}
	if n1 != 1 || n2 != 4 {
		t.Errorf("line numbers = %d, %d, want 1, 4", n1, n2)
	}
	if _, _, ok := src.Next(); ok {
		t.Error("expected end of input")
	}
	if got := src.LinesRead(); got != 4 {
		t.Errorf("LinesRead = %d, want 4", got)
	}
}

func TestCleanLine(t *testing.T) {
	cases := []struct{ in, want string }{
		{"\ufeff{\"x\":\"y\"}", `{"x":"y"}`},
		{"  {\"x\":\"y\"},  ", `{"x":"y"}`},
		{"{\"x\":\"y\"},", `{"x":"y"}`},
		{"{\"x\":\"y\"}\r", `{"x":"y"}`},
		{"", ""},
	}
	for _, c := range cases {
		if got := cleanLine(c.in); got != c.want {
			t.Errorf("cleanLine(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
