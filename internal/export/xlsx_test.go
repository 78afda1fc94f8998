package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"brainhub/internal/domain"
)

func TestWriteBoardXLSX(t *testing.T) {
	entries := []domain.ScoreEntry{
		{Game: "WordMatch", PlayerName: "Grace", Score: 900, Date: "2026-10-16"},
		{Game: "WordMatch", PlayerName: "Ada", Score: 500, Difficulty: "hard", Date: "2026-10-16"},
	}

	var buf bytes.Buffer
	if err := WriteBoardXLSX(&buf, domain.BoardDaily, entries); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("daily")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Rank" || rows[0][3] != "Score" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][1] != "Grace" || rows[1][3] != "900" {
		t.Fatalf("unexpected first row %v", rows[1])
	}
	if rows[2][0] != "2" || rows[2][4] != "hard" {
		t.Fatalf("unexpected second row %v", rows[2])
	}
}

func TestWriteBoardXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBoardXLSX(&buf, domain.BoardAllTime, nil); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("allTime")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected only header, got %d rows", len(rows))
	}
}
