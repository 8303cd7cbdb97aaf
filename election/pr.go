// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"sort"

	"github.com/ewanross/seatswap/models"
)

// AllocatePR distributes totalSeats proportionally over party vote totals
// using the named method. totals must be aligned with parties. The
// returned allocation always sums to exactly totalSeats.
func AllocatePR(parties []string, totals []int64, totalSeats int, method string) (models.Allocation, error) {
	if totalSeats <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSeatCount, totalSeats)
	}

	var totalVotes int64
	for _, v := range totals {
		totalVotes += v
	}
	if totalVotes == 0 {
		return nil, ErrNoVotes
	}

	switch method {
	case models.MethodDHondt:
		return newAllocation(parties, dhondt(totals, totalSeats)), nil
	case models.MethodLargestRemainder:
		return newAllocation(parties, largestRemainder(totals, totalVotes, totalSeats)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// dhondt awards seats one at a time to the party with the highest next
// quotient votes/(seats+1). Quotients are compared by cross-multiplication
// in int64, so the result is exact; a tied quotient goes to the party
// earlier in source column order.
func dhondt(totals []int64, totalSeats int) []int {
	seats := make([]int, len(totals))
	for s := 0; s < totalSeats; s++ {
		winner := -1
		for j, v := range totals {
			if winner < 0 {
				winner = j
				continue
			}
			// v/(seats[j]+1) > totals[winner]/(seats[winner]+1)
			if v*int64(seats[winner]+1) > totals[winner]*int64(seats[j]+1) {
				winner = j
			}
		}
		seats[winner]++
	}
	return seats
}

// largestRemainder applies Hare-quota largest-remainder allocation. Each
// party first takes floor(votes*seats/totalVotes); leftover seats go to the
// parties with the largest fractional remainders, ties broken by source
// column order. Remainders are compared as integer numerators, so the
// result is exact.
func largestRemainder(totals []int64, totalVotes int64, totalSeats int) []int {
	seats := make([]int, len(totals))
	remainders := make([]int64, len(totals))

	assigned := 0
	for j, v := range totals {
		scaled := v * int64(totalSeats)
		seats[j] = int(scaled / totalVotes)
		remainders[j] = scaled % totalVotes
		assigned += seats[j]
	}

	order := make([]int, len(totals))
	for j := range order {
		order[j] = j
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})

	// assigned can fall short of totalSeats by at most len(totals)-1
	for i := 0; assigned < totalSeats; i++ {
		seats[order[i%len(order)]]++
		assigned++
	}

	return seats
}
