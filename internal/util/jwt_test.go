package util

import (
	"net/http/httptest"
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(42, "secret")
	if err != nil {
		t.Fatal(err)
	}

	id, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatal(err)
	}
	if id != 42 {
		t.Errorf("employee id = %d, want 42", id)
	}
}

func TestParseJWT_wrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(42, "secret")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestExtractToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"missing", "", ""},
		{"bearer", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"case insensitive scheme", "bearer abc", "abc"},
		{"wrong scheme", "Basic abc", ""},
		{"malformed", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			if got := ExtractToken(r); got != tc.want {
				t.Errorf("ExtractToken = %q, want %q", got, tc.want)
			}
		})
	}
}
