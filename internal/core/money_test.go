package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"200", 20000, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Cents: 100000}
	b := Money{Cents: 20000}
	if got := a.Add(b).Cents; got != 120000 {
		t.Errorf("Add = %d, want 120000", got)
	}
	if got := a.Sub(b).Cents; got != 80000 {
		t.Errorf("Sub = %d, want 80000", got)
	}
	// Remaining budget may legitimately go negative.
	if got := b.Sub(a).Cents; got != -80000 {
		t.Errorf("Sub = %d, want -80000", got)
	}
	if got := b.Units(); got != 200.0 {
		t.Errorf("Units = %v, want 200", got)
	}
}

func TestMoneyJSON(t *testing.T) {
	cases := []struct {
		cents int64
		wire  string
	}{
		{20000, "200"},
		{1234, "12.34"},
		{50, "0.5"},
	}
	for _, tc := range cases {
		raw, err := json.Marshal(Money{Cents: tc.cents})
		if err != nil {
			t.Fatalf("marshal %d: %v", tc.cents, err)
		}
		if string(raw) != tc.wire {
			t.Errorf("marshal %d = %s, want %s", tc.cents, raw, tc.wire)
		}
		var back Money
		if err := json.Unmarshal(raw, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if back.Cents != tc.cents {
			t.Errorf("round trip %d -> %d", tc.cents, back.Cents)
		}
	}

	var m Money
	if err := json.Unmarshal([]byte(`-5`), &m); err == nil {
		t.Error("negative wire amount should not decode")
	}
}
