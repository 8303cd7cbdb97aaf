// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election computes seat allocations for UK general elections under
First-Past-The-Post and proportional representation.

# Allocation

AllocateFPTP awards one seat per constituency to the plurality winner.
AllocatePR distributes a fixed number of seats over national or regional
party vote totals with one of two methods:

  - dhondt: highest-averages, next seat to the party with the largest
    votes/(seats+1) quotient
  - largest-remainder: Hare quota floor allocation, leftover seats by
    descending fractional remainder

Both methods compare quotients and remainders with integer arithmetic, so
allocations are exact and reproducible. Every tie in either system is
broken by source column order: the party appearing first in the data wins
the seat. An allocation always sums to the configured seat total; for
FPTP that is the constituency count.

# Comparison

Compare pulls an election's vote matrix from a Store, runs both systems,
and reports the allocations together with per-party seat differences
(SeatDifferences) and the viable ruling coalitions under each system
(Coalitions). A coalition is any set of parties, up to a configured size,
whose combined seats reach a chamber majority.

# Errors

Allocation failures are reported with sentinel errors suitable for
errors.Is: ErrElectionNotFound, ErrInvalidSeatCount, ErrUnknownMethod,
ErrUnknownScope, ErrNoVotes.
*/
package election
