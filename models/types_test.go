// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		election string
		expected string
	}{
		{"2019", "2019"},
		{"1955", "1955"},
		{"1974F", "1974 February"},
		{"1974O", "1974 October"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.election); got != tt.expected {
			t.Errorf("DisplayName(%q): expected %q, got %q", tt.election, tt.expected, got)
		}
	}
}

func TestAllocation_TotalSeats(t *testing.T) {
	alloc := Allocation{
		{Party: "Con", Seats: 365},
		{Party: "Lab", Seats: 202},
		{Party: "Other", Seats: 0},
	}
	if got := alloc.TotalSeats(); got != 567 {
		t.Errorf("Expected 567, got %d", got)
	}
}

func TestAllocation_Seats(t *testing.T) {
	alloc := Allocation{
		{Party: "Con", Seats: 365},
		{Party: "Lab", Seats: 202},
	}
	if got := alloc.Seats("Lab"); got != 202 {
		t.Errorf("Expected 202, got %d", got)
	}
	if got := alloc.Seats("SNP"); got != 0 {
		t.Errorf("Expected 0 for an absent party, got %d", got)
	}
}
