// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "github.com/ewanross/seatswap/models"

// AllocateFPTP awards one seat per constituency to the party with the most
// votes in it. A tie goes to the first of the tied parties in source column
// order, so exactly one seat is awarded per constituency and the total
// always equals the number of constituencies.
func AllocateFPTP(m VoteMatrix) models.Allocation {
	seats := make([]int, len(m.Parties))
	for _, row := range m.Rows {
		if len(row) == 0 {
			continue
		}
		winner := 0
		for j, v := range row {
			if v > row[winner] {
				winner = j
			}
		}
		seats[winner]++
	}
	return newAllocation(m.Parties, seats)
}
