package services

import (
	"math"
	"strings"
)

// AmountToWords converts an amount to Indian English words for the quotation
// PDF, e.g. 913183 → "Nine Lakhs Thirteen Thousand One Hundred and Eighty
// Three Rupees Only/-".
func AmountToWords(amount float64) string {
	if amount < 0 {
		return "Negative " + AmountToWords(-amount)
	}

	rupees := int64(math.Round(amount))
	if rupees == 0 {
		return "Zero Rupees Only/-"
	}

	return convertToIndianWords(rupees) + " Rupees Only/-"
}

func convertToIndianWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string

	if n >= 10000000 {
		parts = append(parts, convertUnder100(n/10000000)+" Crores")
		n %= 10000000
	}
	if n >= 100000 {
		parts = append(parts, convertUnder100(n/100000)+" Lakhs")
		n %= 100000
	}
	if n >= 1000 {
		parts = append(parts, convertUnder100(n/1000)+" Thousand")
		n %= 1000
	}
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}

	return strings.Join(parts, " ")
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
