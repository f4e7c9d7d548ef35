package encoder

import "strconv"

func itoa(n int) string { return strconv.Itoa(n) }

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
