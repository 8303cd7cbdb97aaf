// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "context"

// VoteMatrix holds constituency-level vote counts for one election, in the
// column order of the source data. Rows are constituencies; Rows[i][j] is
// the vote count for Parties[j] in constituency i.
type VoteMatrix struct {
	Parties []string
	Rows    [][]int64
}

// Constituencies returns the number of constituencies in the matrix.
func (m VoteMatrix) Constituencies() int {
	return len(m.Rows)
}

// PartyTotals sums each party's votes over all constituencies. The result
// is aligned with m.Parties.
func (m VoteMatrix) PartyTotals() []int64 {
	totals := make([]int64, len(m.Parties))
	for _, row := range m.Rows {
		for j, v := range row {
			totals[j] += v
		}
	}
	return totals
}

// TotalVotes sums every vote in the matrix.
func (m VoteMatrix) TotalVotes() int64 {
	var total int64
	for _, row := range m.Rows {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Store provides read access to historical election results. The db
// package implements it over the imported results database.
type Store interface {
	// Elections lists the available election names in ascending order.
	Elections(ctx context.Context) ([]string, error)

	// Regions lists the distinct Country/Region values for an election.
	Regions(ctx context.Context, election string) ([]string, error)

	// VoteData returns the vote matrix for an election. An empty region
	// selects the whole electorate. When ignoreOther is set, the Other
	// pseudo-party column is excluded.
	VoteData(ctx context.Context, election, region string, ignoreOther bool) (VoteMatrix, error)
}
