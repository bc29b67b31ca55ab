package utils

// StringSlice returns the string elements of slice and whether every element
// was a string.
func StringSlice(slice []any) ([]string, bool) {
	stringSlice := make([]string, 0, len(slice))
	for _, v := range slice {
		if s, ok := v.(string); ok {
			stringSlice = append(stringSlice, s)
		}
	}
	return stringSlice, len(stringSlice) == len(slice)
}
