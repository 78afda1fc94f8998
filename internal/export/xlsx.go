// Package export renders leaderboards as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"brainhub/internal/domain"
)

// Header is the first row of an exported board
var Header = []interface{}{"Rank", "Player", "Game", "Score", "Difficulty", "Date"}

// WriteBoardXLSX writes entries as a workbook with one sheet named after board
func WriteBoardXLSX(w io.Writer, board domain.Board, entries []domain.ScoreEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := string(board)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}
	if err := sw.SetRow("A1", Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{i + 1, e.PlayerName, e.Game, e.Score, e.Difficulty, e.Date}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
