// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/xuri/excelize/v2"

	"github.com/ewanross/seatswap/cliparse"
)

// MinElectionYear is the first election with usable vote data. Sheets for
// earlier elections only carry vote shares.
const MinElectionYear = 1955

// Header layout of the source workbook: party names sit in the second row
// above merged "Votes"/"Vote share" pairs in the third row, and
// constituency data starts in the fourth.
const (
	partyHeaderRow = 1
	kindHeaderRow  = 2
	firstDataRow   = 3
)

// Run imports every valid sheet of an xlsx results workbook into the
// configured database, one table per election, replacing any existing
// tables. Intended as a one-shot setup step.
func Run(cfg cliparse.Config, xlsxPath string) error {
	book, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer book.Close()

	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer conn.Close()

	imported := 0
	for _, sheet := range book.GetSheetList() {
		if !ValidSheet(sheet) {
			continue
		}

		rows, err := book.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}

		if err := importSheet(conn, driver, sheet, rows); err != nil {
			return fmt.Errorf("failed to import sheet %q: %w", sheet, err)
		}
		imported++
	}

	if imported == 0 {
		return fmt.Errorf("no valid election sheets in %s", xlsxPath)
	}
	slog.Info("import finished", "file", xlsxPath, "elections", imported)
	return nil
}

// ValidSheet reports whether a sheet holds a usable election: a year from
// MinElectionYear on, or one of the two 1974 elections.
func ValidSheet(name string) bool {
	year, err := strconv.Atoi(name)
	if err != nil {
		return name == "1974F" || name == "1974O"
	}
	return year >= MinElectionYear
}

// importSheet flattens the sheet's two-row header, then writes the data
// rows into a fresh table named after the sheet.
func importSheet(conn *sql.DB, driver, sheet string, rows [][]string) error {
	if len(rows) <= firstDataRow {
		return fmt.Errorf("sheet has no data rows")
	}

	columns := flattenHeader(cellAt(rows, partyHeaderRow), cellAt(rows, kindHeaderRow))

	// Columns the merged-cell cleanup left unnamed carry no data.
	keep := make([]int, 0, len(columns))
	names := make([]string, 0, len(columns))
	for i, col := range columns {
		if col == "" {
			continue
		}
		keep = append(keep, i)
		names = append(names, col)
	}
	if len(names) == 0 || names[0] != "id" {
		return fmt.Errorf("unexpected header layout")
	}

	tx, err := conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DROP TABLE IF EXISTS ` + quoteIdent(sheet)); err != nil {
		return err
	}

	defs := make([]string, len(names))
	for i, col := range names {
		colType := "TEXT"
		if numericColumn(col) {
			colType = "REAL"
		}
		defs[i] = quoteIdent(col) + " " + colType
	}
	createStmt := fmt.Sprintf(`CREATE TABLE %s (%s)`,
		quoteIdent(sheet), strings.Join(defs, ", "))
	if _, err := tx.Exec(createStmt); err != nil {
		return err
	}

	insertStmt, err := tx.Prepare(insertSQL(driver, sheet, names))
	if err != nil {
		return err
	}
	defer insertStmt.Close()

	constituencies := 0
	var totalVotes int64
	for _, row := range rows[firstDataRow:] {
		values := make([]any, len(keep))
		for v, i := range keep {
			values[v] = cellValue(row, i, names[v])
		}

		// rows without an id are spreadsheet padding
		if values[0] == nil {
			continue
		}

		if _, err := insertStmt.Exec(values...); err != nil {
			return err
		}
		constituencies++
		for v, col := range names {
			if !strings.HasPrefix(col, "Votes-") {
				continue
			}
			if f, ok := values[v].(float64); ok {
				totalVotes += int64(f)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Info("imported election", "election", sheet,
		"constituencies", constituencies,
		"votes", humanize.Comma(totalVotes))
	return nil
}

// flattenHeader builds flat column names from the party row and the kind
// row. "Votes" and "Vote share" cells get suffixed with the party they
// belong to; the first column is always the constituency id.
func flattenHeader(parties, kinds []string) []string {
	columns := make([]string, len(kinds))
	for i, kind := range kinds {
		clean := strings.TrimSpace(kind)
		switch clean {
		case "Votes":
			columns[i] = "Votes-" + partyAt(parties, i)
		case "Vote share":
			// the merged party cell sits over the Votes column to the left
			columns[i] = "Vote share-" + partyAt(parties, i-1)
		default:
			columns[i] = clean
		}
	}
	if len(columns) > 0 {
		columns[0] = "id"
	}
	return columns
}

func partyAt(parties []string, i int) string {
	if i < 0 || i >= len(parties) {
		return ""
	}
	return strings.TrimSpace(parties[i])
}

func cellAt(rows [][]string, i int) []string {
	if i >= len(rows) {
		return nil
	}
	return rows[i]
}

// cellValue converts one spreadsheet cell for insertion. Empty cells
// become NULL; numeric columns parse as floats, with unparseable text
// also treated as NULL so one bad cell does not abort the import.
func cellValue(row []string, i int, column string) any {
	if i >= len(row) {
		return nil
	}
	raw := strings.TrimSpace(row[i])
	if raw == "" {
		return nil
	}
	if numericColumn(column) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			slog.Warn("skipping unparseable numeric cell",
				"column", column, "value", raw)
			return nil
		}
		return f
	}
	return raw
}

func numericColumn(column string) bool {
	return strings.HasPrefix(column, "Votes-") ||
		strings.HasPrefix(column, "Vote share-")
}

func insertSQL(driver, table string, columns []string) string {
	quoted := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
		marks[i] = "?"
		if driver == "postgres" {
			marks[i] = fmt.Sprintf("$%d", i+1)
		}
	}
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		quoteIdent(table), strings.Join(quoted, ", "), strings.Join(marks, ", "))
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
