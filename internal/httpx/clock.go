package httpx

import "time"

// Timestamp returns the current UTC time in RFC3339 form, the format
// every response body carries.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
