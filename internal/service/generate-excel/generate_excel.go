package generate_excel

import (
	"context"
	"fmt"
	"github.com/xuri/excelize/v2"
	"rota-golang/internal/service/schedule"
	"rota-golang/internal/storage"
)

type RosterSource interface {
	BuildRoster(ctx context.Context, runID int64) (*schedule.Roster, *storage.SolutionRun, error)
}

type PersonnelStorage interface {
	GetPersonnelLabels(ctx context.Context) (map[int]string, error)
}

// GenerateExcelService renders a composed roster into the workbook
// layout the planners expect: one merged personnel cell per block, a
// column per weekday, merged day/night tally columns on the right.
type GenerateExcelService struct {
	roster    RosterSource
	personnel PersonnelStorage
}

func NewGenerateService(roster RosterSource, personnel PersonnelStorage) *GenerateExcelService {
	return &GenerateExcelService{roster: roster, personnel: personnel}
}

const (
	colPersonnel = 1
	colFirstDay  = 2 // Monday
	colLastDay   = 8 // Sunday
	colDayTally  = 9
	colNight     = 10
)

// GenerateExcel composes the run and writes the workbook, returning
// the file bytes and the download file name.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, runID int64) ([]byte, string, error) {
	const op = "service.generate_excel.GenerateExcel"

	roster, run, err := g.roster.BuildRoster(ctx, runID)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	labels, err := g.personnel.GetPersonnelLabels(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Shift Schedule"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	centerStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// Header row: Personnel, the seven weekdays, the two tally columns.
	f.SetCellValue(sheet, cellName(colPersonnel, 1), "Personnel")
	for i, day := range schedule.Weekdays {
		f.SetCellValue(sheet, cellName(colFirstDay+i, 1), day)
	}
	f.SetCellValue(sheet, cellName(colDayTally, 1), "Day")
	f.SetCellValue(sheet, cellName(colNight, 1), "Night")
	f.SetCellStyle(sheet, cellName(colPersonnel, 1), cellName(colNight, 1), headerStyle)

	// Week rows, one block of rowsPerPerson rows per person.
	for n := 0; n < roster.NumPersonnel; n++ {
		startRow, endRow := blockRows(n, roster.RowsPerPerson)

		for r := 0; r < roster.RowsPerPerson; r++ {
			for i, day := range schedule.Weekdays {
				cell := roster.Grid[day][n*roster.RowsPerPerson+r]
				if cell != "" {
					f.SetCellValue(sheet, cellName(colFirstDay+i, startRow+r), cell)
				}
			}
		}
		f.SetCellStyle(sheet,
			cellName(colFirstDay, startRow), cellName(colLastDay, endRow), centerStyle)

		g.mergeBlock(f, sheet, colPersonnel, startRow, endRow, centerStyle)
		f.SetCellValue(sheet, cellName(colPersonnel, startRow), personLabel(labels, n+1))

		g.mergeBlock(f, sheet, colDayTally, startRow, endRow, centerStyle)
		if count, ok := roster.DayShifts[n+1]; ok {
			f.SetCellValue(sheet, cellName(colDayTally, startRow), count)
		}

		g.mergeBlock(f, sheet, colNight, startRow, endRow, centerStyle)
		if count, ok := roster.NightShifts[n+1]; ok {
			f.SetCellValue(sheet, cellName(colNight, startRow), count)
		}
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(sheet, "B", "H", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	fileName := fmt.Sprintf("shift_schedule_%d_%d.xlsx", run.Month, run.Year)
	return buf.Bytes(), fileName, nil
}

func (g *GenerateExcelService) mergeBlock(f *excelize.File, sheet string, col, startRow, endRow, style int) {
	f.MergeCell(sheet, cellName(col, startRow), cellName(col, endRow))
	f.SetCellStyle(sheet, cellName(col, startRow), cellName(col, endRow), style)
}

// blockRows returns the first and last sheet row of person block n
// (0-based), offset by the header row.
func blockRows(n, rowsPerPerson int) (int, int) {
	startRow := n*rowsPerPerson + 2
	return startRow, startRow + rowsPerPerson - 1
}

func personLabel(labels map[int]string, index int) string {
	if label, ok := labels[index]; ok {
		return label
	}
	return fmt.Sprintf("P%d", index)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
