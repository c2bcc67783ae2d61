package sanitizer

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  Jane Doe  ",
			want:  "Jane Doe",
		},
		{
			name:  "multiple spaces between words",
			input: "Jane    Doe",
			want:  "Jane Doe",
		},
		{
			name:  "tabs and newlines",
			input: "Jane\t\nDoe",
			want:  "Jane Doe",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "preserve special characters",
			input: " Café & Spa™ ",
			want:  "Café & Spa™",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeName(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{" Jane@Example.COM ", "jane@example.com"},
		{"jane@example.com", "jane@example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.input); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeMessageStripsControlChars(t *testing.T) {
	got := NormalizeMessage("hello\x00 world\nsecond line\x07")
	want := "hello world\nsecond line"
	if got != want {
		t.Errorf("NormalizeMessage = %q, want %q", got, want)
	}
}

func TestNormalizeMessageIdempotent(t *testing.T) {
	input := "  a   note with \t tabs  "
	once := NormalizeMessage(input)
	twice := NormalizeMessage(once)
	if once != twice {
		t.Errorf("NormalizeMessage not idempotent: %q != %q", once, twice)
	}
}
