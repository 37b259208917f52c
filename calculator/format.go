package calculator

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatWatts renders a heat load for display, e.g. "173,123.40 W".
func FormatWatts(q float64) string {
	switch {
	case math.IsNaN(q):
		return "NaN W"
	case math.IsInf(q, 1):
		return "+Inf W"
	case math.IsInf(q, -1):
		return "-Inf W"
	}
	return message.NewPrinter(language.English).Sprintf("%.2f W", q)
}
