package types

import (
	"testing"
	"time"
)

func TestNewTickID_RoundTrip(t *testing.T) {
	id := NewTickID()

	parsed, err := ParseTickID(string(id))
	if err != nil {
		t.Fatalf("ParseTickID() error = %v, want nil", err)
	}
	if parsed != id {
		t.Errorf("ParseTickID() = %v, want %v", parsed, id)
	}
}

func TestParseTickID_Invalid(t *testing.T) {
	if _, err := ParseTickID("not-a-uuid"); err == nil {
		t.Error("ParseTickID() error = nil, want error")
	}
}

func TestTickIDTime(t *testing.T) {
	before := time.Now().Add(-time.Second)
	id := NewTickID()
	after := time.Now().Add(time.Second)

	ts := TickIDTime(id)
	if ts.Before(before) || ts.After(after) {
		t.Errorf("TickIDTime() = %v, want between %v and %v", ts, before, after)
	}

	if !TickIDTime("garbage").IsZero() {
		t.Error("TickIDTime(invalid) should be zero")
	}
}

func TestNewTickID_Ordered(t *testing.T) {
	a := NewTickID()
	b := NewTickID()
	if !(a < b) {
		t.Errorf("tick ids not increasing: %v >= %v", a, b)
	}
}
