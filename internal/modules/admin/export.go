package admin

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"techrent/internal/repository"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	equipmentSheet = "Equipment"
	reviewSheet    = "Reviews"
)

var (
	equipmentHeaders = []any{"ID", "Name", "Category", "Price per day", "Deposit", "Available", "Reviews", "Average rating"}
	reviewHeaders    = []any{"ID", "Created", "User", "Equipment", "Rating", "Comment"}
)

// buildWorkbook writes a bold header row and then one row per item. The
// workbook is closed when any write fails.
func buildWorkbook(sheet string, headers []any, n int, row func(i int) []any) (*excelize.File, error) {
	wb := excelize.NewFile()
	if err := fillSheet(wb, sheet, headers, n, row); err != nil {
		_ = wb.Close()
		return nil, err
	}
	return wb, nil
}

func fillSheet(wb *excelize.File, sheet string, headers []any, n int, row func(i int) []any) error {
	if err := wb.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := wb.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	style, err := wb.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := wb.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		values := row(i)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

// ExportEquipment writes every equipment item matching f, in listing order.
func (s *Service) ExportEquipment(ctx context.Context, f repository.EquipmentFilter) (*excelize.File, error) {
	items, err := s.equipment.ListAll(ctx, f)
	if err != nil {
		return nil, err
	}

	wb, err := buildWorkbook(equipmentSheet, equipmentHeaders, len(items), func(i int) []any {
		e := items[i]
		category := ""
		if e.Category != nil {
			category = e.Category.Name
		}
		avg := ""
		if v, ok := e.AverageRating(); ok {
			avg = fmt.Sprintf("%.2f", v)
		}
		return []any{e.ID, e.Name, category, e.PricePerDay, e.Deposit, e.AvailableQuantity, len(e.Reviews), avg}
	})
	if err != nil {
		return nil, err
	}
	_ = wb.SetColWidth(equipmentSheet, "B", "C", 30)
	return wb, nil
}

// ExportReviews writes every review matching f, newest first.
func (s *Service) ExportReviews(ctx context.Context, f repository.ReviewFilter) (*excelize.File, error) {
	items, err := s.reviews.ListAll(ctx, f)
	if err != nil {
		return nil, err
	}

	wb, err := buildWorkbook(reviewSheet, reviewHeaders, len(items), func(i int) []any {
		r := items[i]
		user, equipment := "", ""
		if r.User != nil {
			user = r.User.Email
		}
		if r.Equipment != nil {
			equipment = r.Equipment.Name
		}
		return []any{r.ID, r.CreatedAt.Format("2006-01-02 15:04"), user, equipment, r.Rating, r.Comment}
	})
	if err != nil {
		return nil, err
	}
	_ = wb.SetColWidth(reviewSheet, "C", "D", 30)
	_ = wb.SetColWidth(reviewSheet, "F", "F", 60)
	return wb, nil
}
