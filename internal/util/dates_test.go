package util

import (
	"testing"
	"time"
)

func TestDecodeSerialDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "serial day", input: "45748", want: "2025-04-01"},
		{name: "serial with time fraction", input: "45748.5", want: "2025-04-01"},
		{name: "later serial day", input: "45758", want: "2025-04-11"},
		{name: "epoch day", input: "25569", want: "1970-01-01"},
		{name: "text passthrough", input: "01.04.2025 08:24:18", want: "01.04.2025 08:24:18"},
		{name: "iso passthrough", input: "2025-04-11", want: "2025-04-11"},
		{name: "nan passthrough", input: "NaN", want: "NaN"},
		{name: "inf passthrough", input: "+Inf", want: "+Inf"},
		{name: "hex float passthrough", input: "0x1p4", want: "0x1p4"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeSerialDate(tc.input)
			if got == nil {
				t.Fatalf("got nil")
			}
			if *got != tc.want {
				t.Fatalf("got %q want %q", *got, tc.want)
			}
		})
	}
}

func TestDecodeSerialDateEmpty(t *testing.T) {
	if got := DecodeSerialDate(""); got != nil {
		t.Fatalf("got %q, want nil", *got)
	}
	if got := DecodeSerialDate("   "); got != nil {
		t.Fatalf("got %q, want nil", *got)
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2025, 4, 15, 0, 0, 0, 0, time.Local)

	cases := []struct {
		name  string
		input string
		want  int
	}{
		{name: "date with time", input: "01.04.2025 08:24:18", want: 14},
		{name: "date only", input: "01.04.2025", want: 14},
		{name: "same day", input: "15.04.2025", want: 0},
		{name: "future date", input: "20.04.2025", want: -5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DaysSince(tc.input, now)
			if got == nil {
				t.Fatalf("got nil")
			}
			if *got != tc.want {
				t.Fatalf("got %d want %d", *got, tc.want)
			}
		})
	}
}

func TestDaysSinceUnparseable(t *testing.T) {
	now := time.Date(2025, 4, 15, 0, 0, 0, 0, time.Local)
	inputs := []string{
		"",
		"2025-04-01",
		"01.04",
		"01.04.25",
		"aa.bb.cccc",
		"40.04.2025",
		"01.13.2025",
	}
	for _, input := range inputs {
		if got := DaysSince(input, now); got != nil {
			t.Fatalf("DaysSince(%q) = %d, want nil", input, *got)
		}
	}
}
