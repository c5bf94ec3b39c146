package dto

import "time"

type LotFilters struct {
	OwnerID        string
	Name           string     // Case-insensitive exact match
	ExpiringBefore *time.Time // Only dated lots expiring before this instant
	Page           int
	PageSize       int
}
