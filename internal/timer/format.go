// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatTotal renders a total in seconds. With a precision the result
// always has exactly that many fractional digits ("4.00"). Without
// one it is the exact value with at least one fractional digit
// ("4.0", "1.005").
func FormatTotal(total decimal.Decimal, precision int, hasPrecision bool) string {
	if hasPrecision {
		return total.StringFixed(int32(precision))
	}
	s := total.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Format renders the total of a stopped timer with the timer's own
// precision.
func (t *Timer) Format() (string, error) {
	total, err := t.Total()
	if err != nil {
		return "", err
	}
	precision, ok := t.Precision()
	return FormatTotal(total, precision, ok), nil
}

func MsString(duration time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(duration.Nanoseconds())/1e6)
}
