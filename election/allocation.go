// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"sort"

	"github.com/ewanross/seatswap/models"
)

// newAllocation pairs parties with their seat counts and applies the
// standard result ordering: descending seats, Other always last, parties
// with equal seats kept in source column order.
func newAllocation(parties []string, seats []int) models.Allocation {
	alloc := make(models.Allocation, len(parties))
	for i, party := range parties {
		alloc[i] = models.PartySeats{Party: party, Seats: seats[i]}
	}

	sort.SliceStable(alloc, func(i, j int) bool {
		return resultRank(alloc[i]) > resultRank(alloc[j])
	})

	return alloc
}

// resultRank orders parties by seats won, forcing Other below every real
// party regardless of its seat count.
func resultRank(ps models.PartySeats) int {
	if ps.Party == models.OtherParty {
		return -1
	}
	return ps.Seats
}
