// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// PR allocation method constants
const (
	MethodDHondt           = "dhondt"
	MethodLargestRemainder = "largest-remainder"
)

// PR allocation scope constants
const (
	ScopeNational = "national"
	ScopeRegion   = "region"
)

// OtherParty is the pseudo-party the source data uses to pool votes for
// candidates outside the major parties.
const OtherParty = "Other"

// Domain types

// PartySeats is one row of a seat allocation.
type PartySeats struct {
	Party string `json:"party"`
	Seats int    `json:"seats"`
}

// Allocation maps parties to seat counts, ordered by descending seats
// with Other always last.
type Allocation []PartySeats

// TotalSeats returns the sum of all seats in the allocation.
func (a Allocation) TotalSeats() int {
	total := 0
	for _, ps := range a {
		total += ps.Seats
	}
	return total
}

// Seats returns the seat count for a party, 0 if the party is absent.
func (a Allocation) Seats(party string) int {
	for _, ps := range a {
		if ps.Party == party {
			return ps.Seats
		}
	}
	return 0
}

// SeatDelta is the per-party difference between two allocations.
type SeatDelta struct {
	Party string `json:"party"`
	Delta int    `json:"delta"`
}

// Response types

type ElectionInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type ElectionsResponse struct {
	Elections []ElectionInfo `json:"elections"`
}

type RegionsResponse struct {
	Election string   `json:"election"`
	Regions  []string `json:"regions"`
}

type ResultsResponse struct {
	Election       string      `json:"election"`
	DisplayName    string      `json:"display_name"`
	Method         string      `json:"method"`
	Scope          string      `json:"scope"`
	IgnoreOther    bool        `json:"ignore_other"`
	TotalSeats     int         `json:"total_seats"`
	TotalVotes     int64       `json:"total_votes"`
	FPTP           Allocation  `json:"fptp"`
	PR             Allocation  `json:"pr"`
	Differences    []SeatDelta `json:"differences"`
	FPTPCoalitions [][]string  `json:"fptp_coalitions"`
	PRCoalitions   [][]string  `json:"pr_coalitions"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// electionDisplayNames maps the two 1974 elections to readable titles.
// Every other election is already named by its year.
var electionDisplayNames = map[string]string{
	"1974F": "1974 February",
	"1974O": "1974 October",
}

// DisplayName returns a human-readable title for an election name.
func DisplayName(election string) string {
	if name, ok := electionDisplayNames[election]; ok {
		return name
	}
	return election
}
