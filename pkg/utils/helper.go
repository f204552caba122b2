package utils

import (
	"strings"
	"time"
)

/**************************************************************************************************
** RemoveEmptyStrings removes all empty strings from a string array and returns a new array
** without the empty strings. Preserves the order of non-empty strings.
**
** @param arr - Array to process
** @return []string - New array containing only non-empty strings
**************************************************************************************************/
func RemoveEmptyStrings(arr []string) []string {
	result := make([]string, 0, len(arr))

	for _, str := range arr {
		if str != "" {
			result = append(result, str)
		}
	}

	return result
}

/**************************************************************************************************
** SplitList splits a comma-separated value, trims every part and drops the empty ones.
**
** @param value - Comma-separated input
** @return []string - Trimmed, non-empty parts in their original order
**************************************************************************************************/
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return RemoveEmptyStrings(parts)
}

/**************************************************************************************************
** Contains checks if a string is present in a slice of strings.
**
** @param list - Slice of strings to search
** @param s - String to search for
** @return bool - True if string is present in slice, false otherwise
**************************************************************************************************/
func Contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 {
	return &v
}

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time {
	return &t
}

/**************************************************************************************************
** ParseLocalTime parses a user-supplied instant using LocalInputFormats. Layouts that carry an
** offset keep it; the others are interpreted in loc. The result is always expressed in loc so
** calendar-day computations happen in the spot's timezone.
**
** @param value - Input string
** @param loc - Timezone of the spot
** @return time.Time - Parsed instant in loc
** @return error - Error from the last layout tried when none matches
**************************************************************************************************/
func ParseLocalTime(value string, loc *time.Location) (time.Time, error) {
	var lastErr error
	for _, layout := range LocalInputFormats {
		t, err := time.ParseInLocation(layout, strings.TrimSpace(value), loc)
		if err == nil {
			return t.In(loc), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
