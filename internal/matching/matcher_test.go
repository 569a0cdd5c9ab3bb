package matching

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Python", want: "python"},
		{name: "trims whitespace", input: "  SQL  ", want: "sql"},
		{name: "mixed case with dots", input: "Node.JS", want: "node.js"},
		{name: "empty stays empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeAll_DropsEmptyEntries(t *testing.T) {
	got := NormalizeAll([]string{"Python", "  ", "", "SQL"})
	want := []string{"python", "sql"}
	if len(got) != len(want) {
		t.Fatalf("NormalizeAll returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NormalizeAll[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSubstringMatcher(t *testing.T) {
	m := SubstringMatcher{}

	tests := []struct {
		name     string
		user     string
		required string
		want     bool
	}{
		{name: "exact match", user: "python", required: "python", want: true},
		{name: "user contains required", user: "javascript", required: "java", want: true},
		{name: "required contains user", user: "java", required: "javascript", want: true},
		{name: "framework variant", user: "react", required: "react.js", want: true},
		{name: "unrelated skills", user: "python", required: "rust", want: false},
		{name: "overlap without containment", user: "docker", required: "dock workers", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Matches(tt.user, tt.required); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.user, tt.required, got, tt.want)
			}
		})
	}
}

func TestExactMatcher(t *testing.T) {
	m := ExactMatcher{}

	if !m.Matches("python", "python") {
		t.Error("expected exact equality to match")
	}
	if m.Matches("java", "javascript") {
		t.Error("exact matcher must not match on containment")
	}
}

func TestAnyMatch(t *testing.T) {
	user := []string{"python", "sql"}

	if !AnyMatch(SubstringMatcher{}, user, "python") {
		t.Error("expected python to be satisfied")
	}
	if AnyMatch(SubstringMatcher{}, user, "django") {
		t.Error("django should not be satisfied")
	}
	if AnyMatch(SubstringMatcher{}, nil, "python") {
		t.Error("empty user skill set should satisfy nothing")
	}
}
