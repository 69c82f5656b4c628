package repository

import "time"

// Start dates are stored as calendar days, row stamps as RFC 3339 UTC.
const (
	dateLayout  = time.DateOnly
	stampLayout = time.RFC3339
)

func nowUTC() string { return time.Now().UTC().Format(stampLayout) }
