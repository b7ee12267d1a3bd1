package storage

import (
	"testing"

	"github.com/csvql/csvql/internal/value"
)

func TestConvertParquetValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want value.Value
	}{
		{"int64", int64(42), value.NewInteger(42)},
		{"int32", int32(7), value.NewInteger(7)},
		{"int", 3, value.NewInteger(3)},
		{"uint32", uint32(9), value.NewInteger(9)},
		{"string", "Berlin", value.NewText("Berlin")},
		{"bytes", []byte("Paris"), value.NewText("Paris")},
		{"bool", true, value.NewText("true")},
		{"float64", 1.5, value.NewText("1.5")},
		{"nil", nil, value.NewText("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertParquetValue(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("convertParquetValue(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
