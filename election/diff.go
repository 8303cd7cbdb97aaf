// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"sort"

	"github.com/ewanross/seatswap/models"
)

// SeatDifferences reports how many seats each party would gain or lose if
// the second system replaced the first. Parties whose seat count is
// unchanged are omitted; the rest are ordered by decreasing magnitude,
// ties broken by party name.
func SeatDifferences(system1, system2 models.Allocation) []models.SeatDelta {
	parties := make(map[string]struct{})
	for _, ps := range system1 {
		parties[ps.Party] = struct{}{}
	}
	for _, ps := range system2 {
		parties[ps.Party] = struct{}{}
	}

	deltas := make([]models.SeatDelta, 0, len(parties))
	for party := range parties {
		d := system2.Seats(party) - system1.Seats(party)
		if d == 0 {
			continue
		}
		deltas = append(deltas, models.SeatDelta{Party: party, Delta: d})
	}

	sort.Slice(deltas, func(i, j int) bool {
		ai, aj := abs(deltas[i].Delta), abs(deltas[j].Delta)
		if ai != aj {
			return ai > aj
		}
		return deltas[i].Party < deltas[j].Party
	})

	return deltas
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
