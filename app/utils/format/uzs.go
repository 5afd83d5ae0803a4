package format

import (
	"github.com/leekchan/accounting"
)

var uzs = accounting.Accounting{Symbol: "UZS", Precision: 0, Thousand: " ", Format: "%v %s"}

// FormatUZS renders an integer sum for the admin console, e.g.
// "1 250 000 UZS".
func FormatUZS(amount int64) string {
	return uzs.FormatMoney(amount)
}
