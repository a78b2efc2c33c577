package domain

import "fmt"

// FormatUSD renders a non-negative cent amount as a US currency string with
// two decimal places, e.g. 75 -> "$0.75".
func FormatUSD(cents int) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
