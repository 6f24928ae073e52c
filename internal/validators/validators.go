// Package validators turns raw submitted field sets into normalized records.
// Every function is pure: the reference time is passed in and the result is
// either a record or a domain.ValidationError.
package validators

import (
	"regexp"
	"strconv"
	"strings"

	"zambus/internal/utils"
)

var (
	phonePattern = regexp.MustCompile(`^\+260\d{9}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// NormalizePhone accepts "+260 97 1234567" or "+260971234567" and returns the spaced form.
func NormalizePhone(raw string) (string, bool) {
	compact := strings.Join(strings.Fields(raw), "")
	if !phonePattern.MatchString(compact) {
		return "", false
	}
	return compact[:4] + " " + compact[4:6] + " " + compact[6:], true
}

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func clean(s string) string {
	return utils.NormalizeSpace(s)
}

func anyBlank(vals ...string) bool {
	for _, v := range vals {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}
