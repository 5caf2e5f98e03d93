package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// French typography: a narrow no-break space groups thousands and a
// no-break space separates the amount from the currency sign.
const (
	groupSeparator    = "\u202f"
	currencySeparator = "\u00a0"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatPrice formats an amount in euros the French way: "1 234,50 €".
func FormatPrice(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "," + frac + currencySeparator + "€"
}

// ParseDate parses the timestamps found in products.json and appointment
// payloads.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// FormatDate renders a date as "15 janvier 2024". Unparseable input is
// returned unchanged.
func FormatDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return FormatTime(t, false)
}

// FormatDateTime renders a timestamp as "15 janvier 2024 à 14:30".
func FormatDateTime(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return FormatTime(t, true)
}

// FormatTime renders t in French, with or without the time of day.
func FormatTime(t time.Time, withClock bool) string {
	out := fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
	if withClock {
		out += fmt.Sprintf(" à %02d:%02d", t.Hour(), t.Minute())
	}
	return out
}

var dressTypeNames = map[DressType]string{
	Caftan:   "Caftan",
	Takchita: "Takchita",
	Jellaba:  "Jellaba",
	Karakou:  "Karakou",
	Gandoura: "Gandoura",
	Keswa:    "Keswa",
	Fouta:    "Fouta",
}

// DressTypeName is the display name of a product type. Unknown types are
// shown as is.
func DressTypeName(t DressType) string {
	if name, ok := dressTypeNames[t]; ok {
		return name
	}
	return string(t)
}

var statusLabels = map[string]string{
	"pending":   "En attente",
	"confirmed": "Confirmé",
	"cancelled": "Annulé",
	"completed": "Terminé",
}

var statusColors = map[string]string{
	"pending":   "bg-yellow-100 text-yellow-800",
	"confirmed": "bg-green-100 text-green-800",
	"cancelled": "bg-red-100 text-red-800",
	"completed": "bg-blue-100 text-blue-800",
}

// StatusLabel is the French label of an appointment status.
func StatusLabel(status string) string {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return status
}

// StatusColor is the badge class of an appointment status.
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return "bg-gray-100 text-gray-800"
}
