package models

// Row is one spreadsheet record keyed by physical column name. Blank cells
// are present with empty string values, never absent keys. Response
// provenance and assigned identifiers are written back as extra columns.
type Row map[string]string

func (r Row) Clone() Row {
	clone := make(Row, len(r))
	for key, value := range r {
		clone[key] = value
	}
	return clone
}

// Sheet is an ordered set of rows plus the header order they were read in.
// Headers drive column order on write-back.
type Sheet struct {
	Headers []string
	Rows    []Row
}

// EnsureHeader appends a header if the sheet does not carry it yet.
func (s *Sheet) EnsureHeader(name string) {
	for _, header := range s.Headers {
		if header == name {
			return
		}
	}
	s.Headers = append(s.Headers, name)
}
