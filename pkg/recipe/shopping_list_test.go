package recipe

import (
	"bytes"
	"reflect"
	"testing"

	"foodgram/domain"
)

func TestAggregateShoppingList(t *testing.T) {
	tests := []struct {
		name string
		rows []domain.ShoppingListRow
		want []domain.ShoppingListItem
	}{
		{
			name: "Empty",
			rows: nil,
			want: []domain.ShoppingListItem{},
		},
		{
			name: "SameIngredientAcrossRecipes",
			rows: []domain.ShoppingListRow{
				{Name: "flour", MeasurementUnit: "g", Amount: 200},
				{Name: "eggs", MeasurementUnit: "pcs", Amount: 2},
				{Name: "flour", MeasurementUnit: "g", Amount: 300},
			},
			want: []domain.ShoppingListItem{
				{Name: "eggs", MeasurementUnit: "pcs", TotalAmount: 2},
				{Name: "flour", MeasurementUnit: "g", TotalAmount: 500},
			},
		},
		{
			name: "DifferentUnitsStaySeparate",
			rows: []domain.ShoppingListRow{
				{Name: "milk", MeasurementUnit: "ml", Amount: 250},
				{Name: "milk", MeasurementUnit: "cup", Amount: 1},
			},
			want: []domain.ShoppingListItem{
				{Name: "milk", MeasurementUnit: "cup", TotalAmount: 1},
				{Name: "milk", MeasurementUnit: "ml", TotalAmount: 250},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AggregateShoppingList(tt.rows); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AggregateShoppingList() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWriteShoppingListCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteShoppingListCSV(&buf, []domain.ShoppingListItem{
		{Name: "flour", MeasurementUnit: "g", TotalAmount: 500},
		{Name: "salt, sea", MeasurementUnit: "pinch", TotalAmount: 1},
	})
	if err != nil {
		t.Fatalf("WriteShoppingListCSV() error = %v", err)
	}

	want := "name,measurement_unit,total_amount\n" +
		"flour,g,500\n" +
		"\"salt, sea\",pinch,1\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteShoppingListCSV() = %q, want %q", got, want)
	}
}
