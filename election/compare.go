// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"

	"github.com/ewanross/seatswap/models"
)

// CompareOptions configures a FPTP/PR comparison.
type CompareOptions struct {
	Method       string // models.MethodDHondt or models.MethodLargestRemainder
	Scope        string // models.ScopeNational or models.ScopeRegion
	IgnoreOther  bool   // exclude the Other pseudo-party from PR
	MaxCoalition int    // maximum parties per coalition
}

// Compare runs one election under both systems and assembles the full
// comparison: both allocations, per-party differences, and the viable
// ruling coalitions each system would produce.
func Compare(ctx context.Context, store Store, name string, opts CompareOptions) (*models.ResultsResponse, error) {
	full, err := store.VoteData(ctx, name, "", false)
	if err != nil {
		return nil, err
	}

	fptp := AllocateFPTP(full)

	pr, err := allocatePRScoped(ctx, store, name, opts)
	if err != nil {
		return nil, err
	}

	return &models.ResultsResponse{
		Election:       name,
		DisplayName:    models.DisplayName(name),
		Method:         opts.Method,
		Scope:          opts.Scope,
		IgnoreOther:    opts.IgnoreOther,
		TotalSeats:     full.Constituencies(),
		TotalVotes:     full.TotalVotes(),
		FPTP:           fptp,
		PR:             pr,
		Differences:    SeatDifferences(fptp, pr),
		FPTPCoalitions: Coalitions(fptp, opts.MaxCoalition),
		PRCoalitions:   Coalitions(pr, opts.MaxCoalition),
	}, nil
}

// allocatePRScoped runs the PR allocation either over the whole electorate
// or region by region. In either case a scope's seat count is the number
// of constituencies it contains, so the grand total matches FPTP.
func allocatePRScoped(ctx context.Context, store Store, name string, opts CompareOptions) (models.Allocation, error) {
	switch opts.Scope {
	case models.ScopeNational:
		m, err := store.VoteData(ctx, name, "", opts.IgnoreOther)
		if err != nil {
			return nil, err
		}
		return AllocatePR(m.Parties, m.PartyTotals(), m.Constituencies(), opts.Method)

	case models.ScopeRegion:
		regions, err := store.Regions(ctx, name)
		if err != nil {
			return nil, err
		}

		combined := make(map[string]int)
		var order []string
		for _, region := range regions {
			m, err := store.VoteData(ctx, name, region, opts.IgnoreOther)
			if err != nil {
				return nil, err
			}
			alloc, err := AllocatePR(m.Parties, m.PartyTotals(), m.Constituencies(), opts.Method)
			if err != nil {
				return nil, fmt.Errorf("region %q: %w", region, err)
			}
			for _, ps := range alloc {
				if _, seen := combined[ps.Party]; !seen {
					order = append(order, ps.Party)
				}
				combined[ps.Party] += ps.Seats
			}
		}

		seats := make([]int, len(order))
		for i, party := range order {
			seats[i] = combined[party]
		}
		return newAllocation(order, seats), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScope, opts.Scope)
	}
}
