package slug

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "collapses whitespace runs",
			input: "my   new\tpost",
			want:  "my-new-post",
		},
		{
			name:  "already normalized",
			input: "already-a-slug",
			want:  "already-a-slug",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "mixed case with digits",
			input: "Go 1 24 Released",
			want:  "go-1-24-released",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello World",
		"MiXeD   CaSe",
		"already-a-slug",
		"trailing space ",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"hello-world", true},
		{"post-123", true},
		{"a", true},
		{"Hello-World", false},
		{"double--hyphen", false},
		{"-leading", false},
		{"trailing-", false},
		{"has space", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.slug); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.slug, got, tt.want)
		}
	}
}
