// internal/env/env_test.go
package env

import "testing"

func TestBytes(t *testing.T) {
	e := Env{
		{Key: "APP_NAME", Value: "Foo"},
		{Key: "APP_PORT", Value: "3000"},
	}
	want := "APP_NAME=Foo\nAPP_PORT=3000\n"
	if got := string(e.Bytes()); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBytesVerbatimValues(t *testing.T) {
	e := Env{
		{Key: "MSG", Value: `has "quotes" and spaces`},
		{Key: "DSN", Value: "postgres://u:p@host/db?sslmode=disable"},
		{Key: "EMPTY", Value: ""},
	}
	want := "MSG=has \"quotes\" and spaces\nDSN=postgres://u:p@host/db?sslmode=disable\nEMPTY=\n"
	if got := string(e.Bytes()); got != want {
		t.Fatalf("values not verbatim: %q", got)
	}
}

func TestBytesEmpty(t *testing.T) {
	var e Env
	if got := e.Bytes(); got != nil {
		t.Fatalf("expected nil for empty env, got %q", got)
	}
}

func TestMaxSizeSane(t *testing.T) {
	limit := MaxSize()
	if limit < 32767 {
		t.Fatalf("limit implausibly small: %d", limit)
	}
}
