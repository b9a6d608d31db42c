package exporter

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"telegram-export-roster/internal/domain"
)

const (
	participantsSheet = "Participants"
	mentionsSheet     = "Mentions"

	// Ширина колонки подгоняется под содержимое, но не больше этого предела.
	maxColumnWidth = 50
)

// BuildWorkbook формирует xlsx-документ с двумя листами: "Participants"
// со списком участников (дата экспорта, username, имя, bio) и "Mentions"
// со списком упоминаний, по одному на строку.
func BuildWorkbook(result domain.ParseResult) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", participantsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename participants sheet: %w", err)
	}

	exportDate := time.Now().UTC().Format("2006-01-02")
	headers := []string{"export_date", "username", "full_name", "bio/about"}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(participantsSheet, cell, header)
	}

	for i, p := range result.Participants {
		row := i + 2
		values := []string{exportDate, p.Username, p.FullName, p.Bio}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(participantsSheet, cell, value)
			if len(value) > widths[col] {
				widths[col] = len(value)
			}
		}
	}

	for i := range headers {
		width := widths[i] + 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(participantsSheet, name, name, float64(width)); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if _, err := f.NewSheet(mentionsSheet); err != nil {
		return nil, fmt.Errorf("failed to create mentions sheet: %w", err)
	}
	f.SetCellValue(mentionsSheet, "A1", "username_mentioned")
	for i, mention := range result.Mentions {
		f.SetCellValue(mentionsSheet, fmt.Sprintf("A%d", i+2), mention)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
