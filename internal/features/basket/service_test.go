package basket

import (
	"testing"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []BasketItem
		want  string
	}{
		{
			name:  "empty basket",
			items: nil,
			want:  "0.00",
		},
		{
			name: "single line",
			items: []BasketItem{
				{UnitPrice: 8500, Quantity: 1},
			},
			want: "8500.00",
		},
		{
			name: "quantities multiply",
			items: []BasketItem{
				{UnitPrice: 150.50, Quantity: 3},
				{UnitPrice: 24.48, Quantity: 10},
			},
			want: "696.30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(tt.items).StringFixed(2)
			if got != tt.want {
				t.Errorf("Total = %s, want %s", got, tt.want)
			}
		})
	}
}
