package export

import (
	"math"
	"strconv"
	"strings"
)

// FormatINR renders an amount with Indian digit grouping (12,34,567.50).
// Whole-rupee amounts drop the paise.
func FormatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	// Round to paise first so 1299.999 groups as 1,300.
	amount = math.Round(amount*100) / 100
	intPart := int64(amount)
	paise := int64(math.Round((amount - float64(intPart)) * 100))

	grouped := groupIndian(strconv.FormatInt(intPart, 10))
	if paise > 0 {
		grouped += "." + pad2(paise)
	}
	if neg {
		return "-" + grouped
	}
	return grouped
}

// groupIndian inserts separators after the last three digits and then every
// two digits: 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}

func pad2(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}
