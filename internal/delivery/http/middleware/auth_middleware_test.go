package middleware

import "testing"

func TestBearerFromAuthorizationHeader(t *testing.T) {
	cases := []struct {
		in    string
		token string
		ok    bool
	}{
		{in: "Bearer abc.def.ghi", token: "abc.def.ghi", ok: true},
		{in: "bearer abc", token: "abc", ok: true},
		{in: "  Bearer   abc  ", token: "abc", ok: true},
		{in: "Basic abc", token: "", ok: false},
		{in: "Bearer", token: "", ok: false},
		{in: "Bearer   ", token: "", ok: false},
		{in: "", token: "", ok: false},
	}

	for _, tc := range cases {
		token, ok := BearerFromAuthorizationHeader(tc.in)
		if token != tc.token || ok != tc.ok {
			t.Fatalf("BearerFromAuthorizationHeader(%q) = %q,%v; want %q,%v", tc.in, token, ok, tc.token, tc.ok)
		}
	}
}
