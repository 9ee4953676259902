package query

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"users", "/users"},
		{"/users", "/users"},
		{"//users", "/users"},
		{"", "/"},
		{"/", "/"},
		{"/users/{id}", "/users/{id}"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"throttle:60,1", "throttle"},
		{"auth", "auth"},
		{"can:update,post", "can"},
		{":odd", ""},
	}

	for _, tt := range tests {
		if got := BaseName(tt.in); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
