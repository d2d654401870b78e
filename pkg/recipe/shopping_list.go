package recipe

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"foodgram/domain"
)

var shoppingListHeader = []string{"name", "measurement_unit", "total_amount"}

// AggregateShoppingList sums amounts per (name, measurement unit) and sorts
// the result by name, then unit.
func AggregateShoppingList(rows []domain.ShoppingListRow) []domain.ShoppingListItem {
	type key struct {
		name string
		unit string
	}

	totals := make(map[key]int, len(rows))
	for _, row := range rows {
		totals[key{row.Name, row.MeasurementUnit}] += row.Amount
	}

	items := make([]domain.ShoppingListItem, 0, len(totals))
	for k, total := range totals {
		items = append(items, domain.ShoppingListItem{
			Name:            k.name,
			MeasurementUnit: k.unit,
			TotalAmount:     total,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})
	return items
}

// WriteShoppingListCSV writes a header row followed by one row per item.
func WriteShoppingListCSV(w io.Writer, items []domain.ShoppingListItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(shoppingListHeader); err != nil {
		return err
	}

	for _, item := range items {
		if err := cw.Write([]string{item.Name, item.MeasurementUnit, strconv.Itoa(item.TotalAmount)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
