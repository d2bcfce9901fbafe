package main

// Valid story formats for --format.
var validFormats = []string{"auto", "csv", "json", "yaml"}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
