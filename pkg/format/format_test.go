package format

import (
	"testing"
	"time"
)

func TestBRL(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 0,05"},
		{100, "R$ 1,00"},
		{123456, "R$ 1.234,56"},
		{100000000, "R$ 1.000.000,00"},
		{-1000, "-R$ 10,00"},
	}
	for _, c := range cases {
		if got := BRL(c.cents); got != c.want {
			t.Fatalf("BRL(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}

func TestDate(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 16, 45, 0, 0, time.UTC)
	if got := Date(ts); got != "07/03/2024" {
		t.Fatalf("Date = %q", got)
	}
	if got := DateTime(ts); got != "07/03/2024 16:45" {
		t.Fatalf("DateTime = %q", got)
	}
}
