// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db reads historical election results from the imported database.

# Schema

The database holds one table per election, named by year ("1955" through
"2019", plus "1974F" and "1974O" for the two 1974 elections). Each table
keeps the column naming of the source spreadsheet byte-for-byte:

  - id, Constituency: constituency identity
  - Country/Region: the constituency's region
  - Votes-<Party>: one vote-count column per party
  - Vote share-<Party>: vote shares, present but unused here

Tables are produced by the importer package and never written afterwards.

# Drivers

Open selects the driver from the configuration: modernc.org/sqlite for the
default single-file database, lib/pq for hosted PostgreSQL. Election and
column discovery go through sqlite_master/pragma_table_info or
information_schema respectively.

# Usage

	store, err := db.Open(cfg)
	if err != nil {
		...
	}
	defer store.Close()

	matrix, err := store.VoteData(ctx, "2019", "", false)

Store implements election.Store. Unknown election names are reported with
election.ErrElectionNotFound.
*/
package db
