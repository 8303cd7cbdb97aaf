// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer_test

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ewanross/seatswap/db"
	"github.com/ewanross/seatswap/importer"
	"github.com/ewanross/seatswap/testutil"
)

func TestValidSheet(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"2019", true},
		{"1955", true},
		{"1974F", true},
		{"1974O", true},
		{"1951", false},
		{"1900", false},
		{"Notes", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := importer.ValidSheet(tt.name); got != tt.expected {
			t.Errorf("ValidSheet(%q): expected %v, got %v", tt.name, tt.expected, got)
		}
	}
}

// writeWorkbook builds an xlsx file in the source layout: a title row, a
// party row over merged Votes/Vote share pairs, a kind row, then data.
func writeWorkbook(t *testing.T, path string, sheets map[string][][]any) {
	t.Helper()

	book := excelize.NewFile()
	defer book.Close()

	first := true
	for name, rows := range sheets {
		if first {
			book.SetSheetName(book.GetSheetName(0), name)
			first = false
		} else {
			if _, err := book.NewSheet(name); err != nil {
				t.Fatalf("Failed to create sheet %q: %v", name, err)
			}
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := book.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("Failed to write row %d of %q: %v", i, name, err)
			}
		}
	}

	if err := book.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
}

func electionSheet() [][]any {
	return [][]any{
		{"General election results"},
		{"", "", "", "Con", "", "Lab", ""},
		{"", "Constituency", "Country/Region", "Votes", "Vote share", "Votes", "Vote share"},
		{"C001", "Aberdeen North", "Scotland", 25000, 52.1, 18000, 37.5},
		{"C002", "Cardiff West", "Wales", 14000, 31.8, 22000, 50.0},
		{nil, nil, nil, nil, nil, nil, nil},
	}
}

func TestRun(t *testing.T) {
	store, _, cfg := testutil.SetupTestDB(t)
	store.Close()

	path := filepath.Join(t.TempDir(), "results.xlsx")
	writeWorkbook(t, path, map[string][][]any{"2019": electionSheet()})

	if err := importer.Run(cfg, path); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	store, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer store.Close()

	elections, err := store.Elections(context.Background())
	if err != nil {
		t.Fatalf("Elections failed: %v", err)
	}
	if !reflect.DeepEqual(elections, []string{"2019"}) {
		t.Fatalf("Expected [2019], got %v", elections)
	}

	matrix, err := store.VoteData(context.Background(), "2019", "", false)
	if err != nil {
		t.Fatalf("VoteData failed: %v", err)
	}
	if !reflect.DeepEqual(matrix.Parties, []string{"Con", "Lab"}) {
		t.Errorf("Expected parties [Con Lab], got %v", matrix.Parties)
	}

	// the padding row with no id must not be imported
	expected := [][]int64{{25000, 18000}, {14000, 22000}}
	if !reflect.DeepEqual(matrix.Rows, expected) {
		t.Errorf("Expected rows %v, got %v", expected, matrix.Rows)
	}

	regions, err := store.Regions(context.Background(), "2019")
	if err != nil {
		t.Fatalf("Regions failed: %v", err)
	}
	if len(regions) != 2 {
		t.Errorf("Expected 2 regions, got %v", regions)
	}
}

func TestRun_SkipsInvalidSheets(t *testing.T) {
	store, _, cfg := testutil.SetupTestDB(t)
	store.Close()

	path := filepath.Join(t.TempDir(), "results.xlsx")
	writeWorkbook(t, path, map[string][][]any{
		"2019":  electionSheet(),
		"1951":  electionSheet(),
		"Notes": {{"scratch"}},
	})

	if err := importer.Run(cfg, path); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	store, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer store.Close()

	elections, err := store.Elections(context.Background())
	if err != nil {
		t.Fatalf("Elections failed: %v", err)
	}
	if !reflect.DeepEqual(elections, []string{"2019"}) {
		t.Errorf("Expected only 2019 to import, got %v", elections)
	}
}

func TestRun_ReplacesExistingTable(t *testing.T) {
	store, conn, cfg := testutil.SetupTestDB(t)

	testutil.SeedElection(t, conn, "2019",
		[]string{"Con", "Lab", "LD"},
		[]string{"England"},
		[][]int64{{1, 2, 3}})
	store.Close()

	path := filepath.Join(t.TempDir(), "results.xlsx")
	writeWorkbook(t, path, map[string][][]any{"2019": electionSheet()})

	if err := importer.Run(cfg, path); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	store, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer store.Close()

	matrix, err := store.VoteData(context.Background(), "2019", "", false)
	if err != nil {
		t.Fatalf("VoteData failed: %v", err)
	}
	if !reflect.DeepEqual(matrix.Parties, []string{"Con", "Lab"}) {
		t.Errorf("Expected the reimport to replace the table, got parties %v", matrix.Parties)
	}
}

func TestRun_NoValidSheets(t *testing.T) {
	store, _, cfg := testutil.SetupTestDB(t)
	store.Close()

	path := filepath.Join(t.TempDir(), "results.xlsx")
	writeWorkbook(t, path, map[string][][]any{"Notes": {{"scratch"}}})

	if err := importer.Run(cfg, path); err == nil {
		t.Error("Expected an error for a workbook with no election sheets")
	}
}
