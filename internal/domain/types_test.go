package domain

import (
	"encoding/json"
	"testing"
)

func TestIDAcceptsNumbersAndStrings(t *testing.T) {
	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":12,"b":" LOCAL-1 ","c":null}`), &v); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if v.A != "12" || v.B != "LOCAL-1" || v.C != "" {
		t.Fatalf("ids = %+v", v)
	}
	if n, ok := v.A.Int64(); !ok || n != 12 {
		t.Fatalf("Int64(12) = %d %v", n, ok)
	}
	for _, bad := range []ID{"LOCAL-1", "0", "-3", ""} {
		if _, ok := bad.Int64(); ok {
			t.Fatalf("Int64(%q) accepted", bad)
		}
	}
}

func TestCanMoveTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusAccepted, StatusCompleted, true},
		{StatusAccepted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusCompleted, true},
		{StatusCancelled, StatusAccepted, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanMoveTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParsers(t *testing.T) {
	if tr, ok := ParseTransport(" Delman "); !ok || tr != TransportDelman {
		t.Fatalf("ParseTransport = %q %v", tr, ok)
	}
	if _, ok := ParseTransport("ojek"); ok {
		t.Fatalf("ParseTransport accepted ojek")
	}
	if ParseTariffFilter("ACTIVE") != FilterActive || ParseTariffFilter("") != FilterAll {
		t.Fatalf("ParseTariffFilter mismatch")
	}
}
