// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/timvandam/jchunk/internal/escape"
	"go4.org/mem"
)

func TestDecoder(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{``, ``},
		{`ok go`, "ok go"},
		{`abc\ndef`, "abc\ndef"},
		{`\tabc\n`, "\tabc\n"},
		{`\b\f\n\r\t`, "\b\f\n\r\t"},
		{`a & b`, "a & b"},
		{`a\"b`, `a"b`},
		{`a\\b\\cd`, `a\b\cd`},
		{`\/`, `/`},
		{`caf\u00e9`, "caf\u00e9"},
		{`\ud83d\ude00`, "\U0001F600"},  // surrogate pair
		{`\ud83dx`, "\ufffdx"},          // unpaired high surrogate
		{`\ude00`, "\ufffd"},            // lone low surrogate
		{`\ud83dA`, "\ufffdA"},          // high surrogate, then BMP
		{`\q`, "\ufffd"},                // invalid escape
		{`\u00x9`, "\ufffdx9"},          // invalid Unicode escape
		{`\u`, "\ufffd"},                // incomplete Unicode escape
		{`\u00`, "\ufffd"},              // incomplete Unicode escape
		{`trailing\`, "trailing\ufffd"}, // incomplete escape
		{"\u65e5\u672c\u8a9e", "\u65e5\u672c\u8a9e"},
	}
	for _, test := range tests {
		// Decode the whole input, then decode it one byte at a time, then
		// split at every offset. All must agree.
		var d escape.Decoder
		d.WriteString(test.input)
		if got := d.String(); got != test.want {
			t.Errorf("WriteString(%#q): got %#q, want %#q", test.input, got, test.want)
		}

		d.Reset()
		for i := 0; i < len(test.input); i++ {
			d.WriteByte(test.input[i])
		}
		if got := d.String(); got != test.want {
			t.Errorf("WriteByte(%#q): got %#q, want %#q", test.input, got, test.want)
		}

		for i := 1; i < len(test.input); i++ {
			d.Reset()
			d.WriteString(test.input[:i])
			d.WriteString(test.input[i:])
			if got := d.String(); got != test.want {
				t.Errorf("Split %#q|%#q: got %#q, want %#q",
					test.input[:i], test.input[i:], got, test.want)
			}
		}
	}
}

func TestEscaped(t *testing.T) {
	var d escape.Decoder
	d.WriteString(`abc`)
	if d.Escaped() {
		t.Error("Escaped after plain text: got true")
	}
	d.WriteString(`\`)
	if !d.Escaped() {
		t.Error("Escaped after backslash: got false")
	}
	d.WriteString(`"`)
	if d.Escaped() {
		t.Error("Escaped after escaped quote: got true")
	}
	d.WriteString(`\\`)
	if d.Escaped() {
		t.Error("Escaped after escaped backslash: got true")
	}
	if got, want := d.String(), `abc"\`; got != want {
		t.Errorf("String: got %#q, want %#q", got, want)
	}
}

func TestAppendQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029", `"\u2028 \u2029"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
		{"bad \xff byte", `"bad \ufffd byte"`},
		{"\u65e5\u672c\u8a9e", "\"\u65e5\u672c\u8a9e\""},
	}
	for _, test := range tests {
		got := string(escape.AppendQuote(nil, mem.S(test.input)))
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}
