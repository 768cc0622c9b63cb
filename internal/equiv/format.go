package equiv

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatCount formats an equivalency count: thousand separators up to a
// million, abbreviated "~X.X million"/"~X.X billion" beyond.
func FormatCount(v float64) string {
	if v >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", v/BillionThreshold)
	}
	if v >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", v/LargeNumberThreshold)
	}
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// FormatDecimal formats v with one decimal and thousand separators.
func FormatDecimal(v float64) string {
	return printer.Sprintf("%.1f", v)
}
