package model

// Listing is one externally-scraped directory entry. Unlike the other types
// in this package it is never persisted: listings exist for a single
// ingestion run — scraped, matched, merged, discarded.
type Listing struct {
	Name    string
	Website *string
	Flags   []string
}
