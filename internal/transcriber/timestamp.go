package transcriber

import "fmt"

// FormatTimestamp converts seconds to MM:SS.
func FormatTimestamp(seconds float64) string {
	m := int(seconds) / 60
	s := int(seconds) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatTimestampLong converts seconds to HH:MM:SS, omitting the hour field
// when it is zero.
func FormatTimestampLong(seconds float64) string {
	h := int(seconds) / 3600
	m := (int(seconds) % 3600) / 60
	s := int(seconds) % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
