// Package render turns a finished report into side effects: console
// output, JSON/CSV files and an Excel workbook. No aggregation or cost
// math happens here.
package render

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatMoney renders an amount with its currency symbol. Unknown codes
// fall back to a plain numeric rendering so a typo in the configuration
// never breaks a report.
func FormatMoney(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", amount, code)
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", currency.NarrowSymbol(unit.Amount(amount)))
}
