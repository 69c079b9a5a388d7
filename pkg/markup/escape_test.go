package markup

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "plain text",
			input: "Hello, World!",
			want:  "Hello, World!",
		},
		{
			name:  "ampersand",
			input: "Tom & Jerry",
			want:  "Tom &amp; Jerry",
		},
		{
			name:  "angle brackets",
			input: "<div>",
			want:  "&lt;div&gt;",
		},
		{
			name:  "double quote",
			input: `say "hi"`,
			want:  "say &quot;hi&quot;",
		},
		{
			name:  "single quote",
			input: "it's fine",
			want:  "it&apos;s fine",
		},
		{
			name:  "all five reserved characters",
			input: `"'&<>`,
			want:  "&quot;&apos;&amp;&lt;&gt;",
		},
		{
			name:  "already escaped text gains only ampersand escapes",
			input: "&lt;div&gt;",
			want:  "&amp;lt;div&amp;gt;",
		},
		{
			name:  "unicode preserved",
			input: "Hello 世界 🌍",
			want:  "Hello 世界 🌍",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "no entities",
			input: "plain text",
			want:  "plain text",
		},
		{
			name:  "all five entities",
			input: "&quot;&apos;&amp;&lt;&gt;",
			want:  `"'&<>`,
		},
		{
			name:  "entity in context",
			input: "Tom &amp; Jerry",
			want:  "Tom & Jerry",
		},
		{
			name:  "unknown entity collapses to ampersand",
			input: "a&unknown;b",
			want:  "a&b",
		},
		{
			name:  "empty entity name collapses to ampersand",
			input: "a&;b",
			want:  "a&b",
		},
		{
			name:  "stray ampersand swallows text up to next semicolon",
			input: "a&b;c",
			want:  "a&c",
		},
		{
			name:  "unterminated known name still decodes",
			input: "tail&amp",
			want:  "tail&",
		},
		{
			name:  "unterminated unknown name collapses to ampersand",
			input: "tail&nope",
			want:  "tail&",
		},
		{
			name:  "trailing lone ampersand",
			input: "tail&",
			want:  "tail&",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unescape(tt.input); got != tt.want {
				t.Errorf("Unescape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	// Unescape(Escape(x)) == x holds for any text whose ampersands are
	// produced by Escape itself.
	inputs := []string{
		"",
		"plain",
		`<a href="x?a=1&b=2">it's</a>`,
		"&&&",
		"mixed 世界 <>&",
	}
	for _, in := range inputs {
		if got := Unescape(Escape(in)); got != in {
			t.Errorf("Unescape(Escape(%q)) = %q, want identity", in, got)
		}
	}
}
