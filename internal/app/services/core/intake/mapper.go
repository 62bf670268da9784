package intake

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"wav-intake-service/internal/app/models"
	"wav-intake-service/internal/pkg/constvars"
)

var (
	dateSeparators = regexp.MustCompile(`[\/\-.]`)
	stateZip       = regexp.MustCompile(constvars.RegexStateZip)
)

// ParseSheetDate turns a raw cell value into a date. Numeric cells are
// Excel serials (day 0 = 1899-12-30); strings are tried against common
// layouts and finally split into three numeric parts, disambiguating
// D/M/Y from M/D/Y by magnitude of the first part. Anything unparseable
// yields nil, never a sentinel date.
func ParseSheetDate(value string) *time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil {
		seconds := math.Round((serial - constvars.ExcelEpochOffsetDays) * constvars.SecondsPerDay)
		parsed := time.Unix(int64(seconds), 0).UTC()
		return &parsed
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"January 2, 2006",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			parsed = parsed.UTC()
			return &parsed
		}
	}

	parts := dateSeparators.Split(trimmed, -1)
	if len(parts) != 3 {
		return nil
	}
	a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
	b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
	c, errC := strconv.Atoi(strings.TrimSpace(parts[2]))
	if errA != nil || errB != nil || errC != nil {
		return nil
	}

	// First part above 12 cannot be a month, so the string is day-first.
	var day, month, year int
	if a > 12 {
		day, month, year = a, b, c
	} else {
		day, month, year = b, a, c
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return nil
	}

	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if parsed.Day() != day || parsed.Month() != time.Month(month) {
		return nil
	}
	return &parsed
}

// FormatMMDDYYYY renders a date for the remote schema; nil formats to "".
func FormatMMDDYYYY(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(constvars.DateLayoutMMDDYYYY)
}

// SplitName tokenizes a full name on whitespace. One token is a first
// name; two are first and last; three or more keep the outermost tokens
// and join the rest into the middle name.
func SplitName(fullName string) (firstName, middleName, lastName string) {
	parts := strings.Fields(fullName)
	switch {
	case len(parts) == 1:
		firstName = parts[0]
	case len(parts) == 2:
		firstName, lastName = parts[0], parts[1]
	case len(parts) >= 3:
		firstName = parts[0]
		lastName = parts[len(parts)-1]
		middleName = strings.Join(parts[1:len(parts)-1], " ")
	}
	return firstName, middleName, lastName
}

// ParseAddress splits a comma-separated address into street, city and
// state/zip. When the third segment does not look like a two-letter state
// with an optional zip, the whole segment becomes the state.
func ParseAddress(address string) (street, city, state, zip string) {
	if strings.TrimSpace(address) == "" {
		return "", "", "", ""
	}

	pieces := strings.Split(address, ",")
	for i := range pieces {
		pieces[i] = strings.TrimSpace(pieces[i])
	}

	if len(pieces) > 0 {
		street = pieces[0]
	}
	if len(pieces) > 1 {
		city = pieces[1]
	}
	if len(pieces) > 2 && pieces[2] != "" {
		match := stateZip.FindStringSubmatch(pieces[2])
		if match != nil {
			state = match[1]
			zip = match[2]
		} else {
			state = pieces[2]
		}
	}
	return street, city, state, zip
}

// MapPatientFields derives the typed view of one row. It is recomputed
// fresh for every pipeline run and never persisted apart from the row.
func MapPatientFields(row models.Row, columns models.ColumnMap, now time.Time) *models.MappedPatient {
	mapped := &models.MappedPatient{}
	mapped.FirstName, mapped.MiddleName, mapped.LastName = SplitName(row[columns.PatientName])
	mapped.DOB = ParseSheetDate(row[columns.DOB])
	mapped.StartOfCare = ParseSheetDate(row[columns.StartOfCare])
	mapped.EpisodeStart = ParseSheetDate(row[columns.EpisodeStart])
	mapped.EpisodeEnd = ParseSheetDate(row[columns.EpisodeEnd])
	mapped.Street, mapped.City, mapped.State, mapped.Zip = ParseAddress(row[columns.Address])
	mapped.Age = CalcAge(mapped.DOB, now)
	return mapped
}

// CalcAge computes whole years between dob and now, one less when the
// birthday has not yet come around this year. Unknown dob yields "".
func CalcAge(dob *time.Time, now time.Time) string {
	if dob == nil {
		return ""
	}
	age := now.Year() - dob.Year()
	monthDelta := int(now.Month()) - int(dob.Month())
	if monthDelta < 0 || (monthDelta == 0 && now.Day() < dob.Day()) {
		age--
	}
	return strconv.Itoa(age)
}
