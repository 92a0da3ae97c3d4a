package numberutils

import "strconv"

// ToInt converts the given string to an integer, returning 0 when the string
// is not a valid number.
func ToInt(s string) int {
	return ToIntWithDefault(s, 0)
}

// ToIntWithDefault converts the given string to an integer, returning the
// provided default when the string is not a valid number. Useful for optional
// query parameters such as pagination.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}

// IsIntInRange reports whether num lies within [min, max].
func IsIntInRange(num, min, max int) bool {
	return num >= min && num <= max
}

// IsIntPositive reports whether the given number is greater than zero.
func IsIntPositive(number int) bool {
	return number > 0
}
