package query

import "testing"

func TestCompilePattern_ExactMatch(t *testing.T) {
	p := CompilePattern("admin.users")

	if !p.Match("admin.users") {
		t.Error("pattern without wildcard should equal the same string")
	}
	if p.Match("admin.users" + "x") {
		t.Error("pattern without wildcard should not match a longer string")
	}
	if p.Match("admin.user") {
		t.Error("pattern without wildcard should not match a shorter string")
	}
}

func TestCompilePattern_Wildcards(t *testing.T) {
	tests := []struct {
		pattern string
		value   string
		want    bool
	}{
		{"admin.*", "admin.users", true},
		{"admin.*", "admin.", true},
		{"admin.*", "other.users", false},
		{"*.show", "users.show", true},
		{"*.show", "users.index", false},
		{"*", "", true},
		{"*", "anything", true},
		{"a*c*e", "abcde", true},
		{"a*c*e", "ace", true},
		{"a*c*e", "abde", false},
		{"users.*.edit", "users.42.edit", true},
		{"users.*.edit", "users.edit", false},
	}

	for _, tt := range tests {
		p := CompilePattern(tt.pattern)
		if got := p.Match(tt.value); got != tt.want {
			t.Errorf("CompilePattern(%q).Match(%q) = %v, want %v", tt.pattern, tt.value, got, tt.want)
		}
	}
}

func TestCompilePattern_AnchoredBothEnds(t *testing.T) {
	p := CompilePattern("admin")

	if p.Match("superadmin") {
		t.Error("match must not accept a suffix occurrence")
	}
	if p.Match("administrator") {
		t.Error("match must not accept a prefix occurrence")
	}
}

func TestCompilePattern_LiteralMetacharacters(t *testing.T) {
	// Regexp metacharacters in the pattern are literal text.
	tests := []struct {
		pattern string
		value   string
		want    bool
	}{
		{"/users/{id}", "/users/{id}", true},
		{"/users/{id}", "/users/42", false},
		{"a.b", "a.b", true},
		{"a.b", "axb", false},
		{"price+tax", "price+tax", true},
		{"(group)", "(group)", true},
		{"/api/*.json", "/api/list.json", true},
		{"/api/*.json", "/api/list-json", false},
	}

	for _, tt := range tests {
		if got := CompilePattern(tt.pattern).Match(tt.value); got != tt.want {
			t.Errorf("CompilePattern(%q).Match(%q) = %v, want %v", tt.pattern, tt.value, got, tt.want)
		}
	}
}

func TestCompilePattern_CaseSensitive(t *testing.T) {
	if CompilePattern("Admin.*").Match("admin.users") {
		t.Error("matching must not case-fold")
	}
}

func TestHasWildcard(t *testing.T) {
	if HasWildcard("admin.users") {
		t.Error("plain string reported as wildcard")
	}
	if !HasWildcard("admin.*") {
		t.Error("wildcard pattern not detected")
	}
}

func TestMatchPattern(t *testing.T) {
	if !MatchPattern("users.show", "*.show") {
		t.Error("one-shot match failed")
	}
}
