package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already E164",
			input: "+14155552671",
			want:  "+14155552671",
		},
		{
			name:  "US local with punctuation",
			input: "(415) 555-2671",
			want:  "+14155552671",
		},
		{
			name:  "UK number with prefix",
			input: "+44 20 7946 0958",
			want:  "+442079460958",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "garbage passes through for validation to reject",
			input: "not-a-phone",
			want:  "not-a-phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
