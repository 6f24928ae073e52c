package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatKwacha renders an amount as "K1,250" or "K12.50" when there are ngwee.
func FormatKwacha(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	ngwee := int64((amount-float64(whole))*100 + 0.5)
	if ngwee == 100 {
		whole++
		ngwee = 0
	}
	out := sign + "K" + formatThousand(whole)
	if ngwee > 0 {
		out += fmt.Sprintf(".%02d", ngwee)
	}
	return out
}

// ParseAmount parses "K 1,250.50" or "250" into a float.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToUpper(s), "K")
	s = strings.NewReplacer(",", "", " ", "").Replace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid amount")
	}
	return strconv.ParseFloat(s, 64)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
