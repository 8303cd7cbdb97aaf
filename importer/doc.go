// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package importer converts the source results workbook into the database
the server reads.

# Input

The expected workbook is the House of Commons Library's
"1918-2019election_results_by_pcon.xlsx": one sheet per election, party
names in a merged second header row above "Votes"/"Vote share" column
pairs, constituency rows below. Sheets before 1955 are skipped because
they carry no absolute vote counts; "1974F" and "1974O" are accepted by
name.

# Output

One table per election, named after the sheet, with the flattened column
names preserved exactly ("id", "Constituency", "Country/Region",
"Votes-<Party>", "Vote share-<Party>"). Existing tables are replaced.
Vote columns are REAL, everything else TEXT. Empty and unparseable cells
become NULL; rows without an id are dropped.

# Usage

	seatswap -import 1918-2019election_results_by_pcon.xlsx

Run once to build the database, then start the server normally. This is
the only write path in the repository.
*/
package importer
