// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "github.com/ewanross/seatswap/models"

// Coalitions lists every combination of up to maxSize parties whose
// combined seats reach a majority of the chamber. A combination stops
// growing as soon as it reaches the target, so supersets of a viable
// coalition are not reported. An outright winner appears as a one-party
// coalition. Parties with no seats are ignored.
func Coalitions(alloc models.Allocation, maxSize int) [][]string {
	target := majorityTarget(alloc.TotalSeats())
	if target == 0 {
		return nil
	}

	// alloc is already in descending seat order
	candidates := make([]models.PartySeats, 0, len(alloc))
	for _, ps := range alloc {
		if ps.Seats > 0 {
			candidates = append(candidates, ps)
		}
	}

	return findCoalitions(candidates, target, maxSize, nil, 0)
}

// majorityTarget is the smallest seat count that cannot be outvoted by
// the remaining seats.
func majorityTarget(totalSeats int) int {
	if totalSeats == 0 {
		return 0
	}
	return (totalSeats + 2) / 2
}

func findCoalitions(remaining []models.PartySeats, target, maxSize int, current []models.PartySeats, currentSeats int) [][]string {
	if currentSeats >= target {
		coalition := make([]string, len(current))
		for i, ps := range current {
			coalition[i] = ps.Party
		}
		return [][]string{coalition}
	}

	if len(current) >= maxSize {
		return nil
	}

	var found [][]string
	for i, ps := range remaining {
		selection := make([]models.PartySeats, len(current), len(current)+1)
		copy(selection, current)
		selection = append(selection, ps)

		next := findCoalitions(remaining[i+1:], target, maxSize,
			selection, currentSeats+ps.Seats)
		found = append(found, next...)
	}
	return found
}
