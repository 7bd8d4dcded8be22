package catalog

import "github.com/shopspring/decimal"

// Average returns the arithmetic mean of scores rounded half away from zero
// to one decimal place. An empty sequence averages to zero.
func Average(scores []int) decimal.Decimal {
	if len(scores) == 0 {
		return decimal.Zero
	}
	var sum int64
	for _, s := range scores {
		sum += int64(s)
	}
	return decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(len(scores)))).
		Round(1)
}

// FormatAverage renders Average for display: "0" when there are no scores,
// otherwise exactly one fractional digit ("4.0", "4.8").
func FormatAverage(scores []int) string {
	if len(scores) == 0 {
		return "0"
	}
	return Average(scores).StringFixed(1)
}
