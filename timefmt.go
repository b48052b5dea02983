package gramocut

import "fmt"

// FormatMs formats a time in milliseconds as e.g. "3m:07s:250".
func FormatMs(ms int) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}
	return fmt.Sprintf("%s%dm:%02ds:%03d", sign, ms/60000, ms/1000%60, ms%1000)
}
