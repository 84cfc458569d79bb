package aiusage

import "errors"

// ErrQuotaExceeded is returned when an admin has no AI calls left this month.
var ErrQuotaExceeded = errors.New("monthly AI quota exceeded")

// DefaultMonthlyQuota is the allowance used when none is configured.
const DefaultMonthlyQuota = 200

// Usage is the state of one admin's allowance.
type Usage struct {
	Remaining int    `json:"remaining"`
	Month     string `json:"month"`
}
