// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ewanross/seatswap/cliparse"
	"github.com/ewanross/seatswap/election"
)

// votesPrefix marks the per-party vote columns in the imported tables.
// The column naming comes from the source spreadsheet and must not change.
const votesPrefix = "Votes-"

// regionColumn is the Country/Region column of the imported tables.
const regionColumn = "Country/Region"

// Store reads election results from the imported database. It is opened
// once at startup and used read-only for the life of the process.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the results database configured in cfg and verifies
// the connection. The caller owns the returned Store and must Close it.
func Open(cfg cliparse.Config) (*Store, error) {
	driver, err := driverName(cfg.DatabaseType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: conn, driver: driver}, nil
}

// driverName maps the configured database type to a registered driver.
func driverName(databaseType string) (string, error) {
	switch databaseType {
	case "sqlite":
		return "sqlite", nil
	case "postgres":
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported database type %q", databaseType)
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Elections lists the election tables in ascending name order. Election
// names sort correctly as strings: "1974F" and "1974O" land between 1970
// and 1979.
func (s *Store) Elections(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`
	if s.driver == "postgres" {
		query = `SELECT table_name FROM information_schema.tables
			WHERE table_schema = 'public' ORDER BY table_name`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list elections: %w", err)
	}
	defer rows.Close()

	var elections []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		elections = append(elections, name)
	}
	return elections, rows.Err()
}

// Regions lists the distinct Country/Region values for an election in
// their order of first appearance in the data.
func (s *Store) Regions(ctx context.Context, name string) ([]string, error) {
	if err := s.checkElection(ctx, name); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT DISTINCT %s FROM %s`,
		quoteIdent(regionColumn), quoteIdent(name))
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	defer rows.Close()

	var regions []string
	for rows.Next() {
		var region string
		if err := rows.Scan(&region); err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return regions, rows.Err()
}

// VoteData returns the constituency-level vote matrix for an election,
// optionally restricted to one region and optionally excluding the Other
// pseudo-party. Party order follows column order in the table, which is
// the column order of the source spreadsheet. NULL vote cells count as
// zero; rows with no vote data at all are skipped with a warning.
func (s *Store) VoteData(ctx context.Context, name, region string, ignoreOther bool) (election.VoteMatrix, error) {
	if err := s.checkElection(ctx, name); err != nil {
		return election.VoteMatrix{}, err
	}

	columns, err := s.voteColumns(ctx, name)
	if err != nil {
		return election.VoteMatrix{}, err
	}

	parties := make([]string, 0, len(columns))
	selected := make([]string, 0, len(columns))
	for _, col := range columns {
		party := strings.TrimSpace(strings.TrimPrefix(col, votesPrefix))
		if ignoreOther && party == "Other" {
			continue
		}
		parties = append(parties, party)
		selected = append(selected, quoteIdent(col))
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`,
		strings.Join(selected, ", "), quoteIdent(name))
	var args []any
	if region != "" {
		query += fmt.Sprintf(` WHERE %s = %s`, quoteIdent(regionColumn), s.placeholder(1))
		args = append(args, region)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return election.VoteMatrix{}, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	matrix := election.VoteMatrix{Parties: parties}
	rowIndex := 0
	for rows.Next() {
		rowIndex++

		cells := make([]sql.NullFloat64, len(parties))
		dest := make([]any, len(parties))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return election.VoteMatrix{}, err
		}

		votes := make([]int64, len(parties))
		valid := false
		for i, cell := range cells {
			if cell.Valid {
				votes[i] = int64(cell.Float64)
				valid = true
			}
		}
		if !valid {
			slog.Warn("skipping constituency with no vote data",
				"election", name, "row", rowIndex)
			continue
		}
		matrix.Rows = append(matrix.Rows, votes)
	}
	return matrix, rows.Err()
}

// voteColumns returns the Votes-* columns of an election table in
// declaration order.
func (s *Store) voteColumns(ctx context.Context, name string) ([]string, error) {
	query := `SELECT name FROM pragma_table_info(` + s.placeholder(1) + `)`
	if s.driver == "postgres" {
		query = `SELECT column_name FROM information_schema.columns
			WHERE table_schema = 'public' AND table_name = $1
			ORDER BY ordinal_position`
	}

	rows, err := s.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect columns: %w", err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return nil, err
		}
		if strings.HasPrefix(col, votesPrefix) {
			columns = append(columns, col)
		}
	}
	return columns, rows.Err()
}

// checkElection verifies the election table exists. Table names cannot be
// bound as query parameters, so membership in the table list also guards
// the interpolated identifiers below.
func (s *Store) checkElection(ctx context.Context, name string) error {
	elections, err := s.Elections(ctx)
	if err != nil {
		return err
	}
	for _, e := range elections {
		if e == name {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", election.ErrElectionNotFound, name)
}

// placeholder returns the positional query placeholder for the driver.
func (s *Store) placeholder(n int) string {
	if s.driver == "postgres" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// quoteIdent double-quotes an identifier. Both SQLite and PostgreSQL
// accept this form, which the spreadsheet-derived column names need
// ("Votes-Labour", "Country/Region").
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
