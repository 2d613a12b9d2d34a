package service

import (
	"fmt"
	"time"

	"timeclock/backend/internal/repository/postgres/report"

	"github.com/jung-kurt/gofpdf/v2"
)

// TimesheetPDF renders one employee's entry history as a printable
// timesheet and returns the written filename.
func TimesheetPDF(data report.HistoryResponse, dir string) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	name := ""
	if data.FirstName != nil {
		name = *data.FirstName
	}
	if data.LastName != nil {
		name += " " + *data.LastName
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Timesheet")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (#%d)", name, data.UserID))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Total hours: %.2f over %d entries", data.TotalHours, data.EntryCount))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(45, 8, "Clock In", "1", 0, "", false, 0, "")
	pdf.CellFormat(45, 8, "Clock Out", "1", 0, "", false, 0, "")
	pdf.CellFormat(25, 8, "Hours", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 8, "Position", "1", 0, "", false, 0, "")
	pdf.CellFormat(35, 8, "Location", "1", 1, "", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, entry := range data.Entries {
		clockOut := "-"
		if entry.ClockOutTime != nil {
			clockOut = entry.ClockOutTime.Format("2006-01-02 15:04")
		}
		hours := "-"
		if entry.TotalHours != nil {
			hours = fmt.Sprintf("%.2f", *entry.TotalHours)
		}
		position := ""
		if entry.Position != nil {
			position = *entry.Position
		}
		location := ""
		if entry.Location != nil {
			location = *entry.Location
		}

		pdf.CellFormat(45, 8, entry.ClockInTime.Format("2006-01-02 15:04"), "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 8, clockOut, "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 8, hours, "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 8, position, "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 8, location, "1", 1, "", false, 0, "")
	}

	fileName := fmt.Sprintf("%s/timesheet_%d_%d.pdf", dir, data.UserID, time.Now().Unix())
	if err := pdf.OutputFileAndClose(fileName); err != nil {
		return "", fmt.Errorf("error saving pdf: %w", err)
	}

	return fileName, nil
}
