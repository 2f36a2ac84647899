package inventory

import (
	"context"
	"io"

	"github.com/tealeg/xlsx"

	"github.com/Rahulkholi70/Pizza-delivery-app/models"
)

var sheetTitles = map[models.IngredientCategory]string{
	models.CategoryBase:   "Bases",
	models.CategorySauce:  "Sauces",
	models.CategoryCheese: "Cheeses",
	models.CategoryVeggie: "Veggies",
	models.CategoryMeat:   "Meats",
}

// ExportXLSX writes the full inventory as a workbook, one sheet per
// category.
func (s *Service) ExportXLSX(ctx context.Context, w io.Writer) error {
	all, err := s.All(ctx)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	for _, category := range models.Categories() {
		sheet, err := file.AddSheet(sheetTitles[category])
		if err != nil {
			return err
		}

		headers := []string{"ID", "Name", "Description", "Price", "Stock", "Threshold", "Available", "Low Stock"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, item := range all[category] {
			row := sheet.AddRow()
			row.AddCell().SetValue(item.ID)
			row.AddCell().SetValue(item.Name)
			row.AddCell().SetValue(item.Description)
			row.AddCell().SetValue(item.Price)
			row.AddCell().SetValue(item.Stock)
			row.AddCell().SetValue(item.Threshold)
			row.AddCell().SetValue(item.IsAvailable)
			row.AddCell().SetValue(item.LowStock())
		}
	}

	return file.Write(w)
}
