package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0,00 €"},
		{"45", "45,00 €"},
		{"150.5", "150,50 €"},
		{"1234.5", "1 234,50 €"},
		{"1234567.891", "1 234 567,89 €"},
		{"999.995", "1 000,00 €"},
		{"-1200", "-1 200,00 €"},
	}
	for _, tt := range tests {
		if got := FormatPrice(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatPrice(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-15T10:00:00Z", "15 janvier 2024"},
		{"2024-08-01", "1 août 2024"},
		{"2023-12-31 23:59:00", "31 décembre 2023"},
		{"bientôt", "bientôt"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	if got := FormatDateTime("2024-02-03T09:05:00+01:00"); got != "3 février 2024 à 09:05" {
		t.Errorf("FormatDateTime() = %q", got)
	}
	at := time.Date(2025, time.June, 21, 18, 30, 0, 0, time.UTC)
	if got := FormatTime(at, true); got != "21 juin 2025 à 18:30" {
		t.Errorf("FormatTime() = %q", got)
	}
}

func TestDressTypeName(t *testing.T) {
	if got := DressTypeName(Takchita); got != "Takchita" {
		t.Errorf("DressTypeName(takchita) = %q", got)
	}
	if got := DressTypeName("sfifa"); got != "sfifa" {
		t.Errorf("DressTypeName(sfifa) = %q", got)
	}
}

func TestStatusLabelAndColor(t *testing.T) {
	tests := []struct {
		status, label, color string
	}{
		{"pending", "En attente", "bg-yellow-100 text-yellow-800"},
		{"confirmed", "Confirmé", "bg-green-100 text-green-800"},
		{"cancelled", "Annulé", "bg-red-100 text-red-800"},
		{"completed", "Terminé", "bg-blue-100 text-blue-800"},
		{"archived", "archived", "bg-gray-100 text-gray-800"},
	}
	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.label {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, got, tt.label)
		}
		if got := StatusColor(tt.status); got != tt.color {
			t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.color)
		}
	}
}
