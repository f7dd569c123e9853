package discovery

import "fmt"

// RoundCount renders an account count for display: below 1000 the literal
// count ("17+"), below 10k a one-decimal thousands figure ("1.4k+"), and
// from 10k up whole thousands ("12k+"). Always rounds down.
func RoundCount(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d+", n)
	}
	if n < 10000 {
		return fmt.Sprintf("%.1fk+", float64(n/100)/10)
	}
	return fmt.Sprintf("%dk+", n/1000)
}
