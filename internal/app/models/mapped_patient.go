package models

import "time"

// MappedPatient is the typed view of one row, recomputed per pipeline run.
// Nil date pointers mean "no date"; they format to empty strings, never to
// a sentinel value.
type MappedPatient struct {
	FirstName  string
	MiddleName string
	LastName   string

	DOB          *time.Time
	StartOfCare  *time.Time
	EpisodeStart *time.Time
	EpisodeEnd   *time.Time

	Street string
	City   string
	State  string
	Zip    string

	// Age in whole years at mapping time; empty when DOB is unknown.
	Age string
}
