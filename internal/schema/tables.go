package schema

import "fmt"

// Table identifies one of the base tables exposed through the API.
//
// The set is closed: every external table key parses into exactly one of
// these values, and anything else is rejected before SQL is built. Caller
// input never reaches a statement as an identifier.
type Table int

const (
	TableInstitution Table = iota
	TableProgram
	TableApplicant
	TableApplication
	TableApplicationDocument
)

var tableKeys = map[string]Table{
	"institutions":          TableInstitution,
	"programs":              TableProgram,
	"applicants":            TableApplicant,
	"applications":          TableApplication,
	"application_documents": TableApplicationDocument,
}

// ParseTable resolves an external table key to its Table value.
func ParseTable(key string) (Table, error) {
	table, ok := tableKeys[key]
	if !ok {
		return 0, fmt.Errorf("unknown table key %q", key)
	}
	return table, nil
}

// Tables returns every base table in dependency order (parents first).
func Tables() []Table {
	return []Table{
		TableInstitution,
		TableProgram,
		TableApplicant,
		TableApplication,
		TableApplicationDocument,
	}
}

// Key returns the external identifier used at the API boundary.
func (t Table) Key() string {
	switch t {
	case TableInstitution:
		return "institutions"
	case TableProgram:
		return "programs"
	case TableApplicant:
		return "applicants"
	case TableApplication:
		return "applications"
	case TableApplicationDocument:
		return "application_documents"
	default:
		return ""
	}
}

// Name returns the SQL table name.
func (t Table) Name() string {
	switch t {
	case TableInstitution:
		return "institution"
	case TableProgram:
		return "program"
	case TableApplicant:
		return "applicant"
	case TableApplication:
		return "application"
	case TableApplicationDocument:
		return "application_document"
	default:
		return ""
	}
}

// Columns returns the insertable columns of the table in schema order.
// The identity column is excluded: ids are generated by the store.
func (t Table) Columns() []string {
	switch t {
	case TableInstitution:
		return []string{"name", "city", "state_province", "country", "accreditation_status"}
	case TableProgram:
		return []string{"name", "minimum_gpa", "duration_years", "enrollment_status"}
	case TableApplicant:
		return []string{"first_name", "last_name", "date_of_birth", "email", "institution_id", "gpa"}
	case TableApplication:
		return []string{"applicant_id", "program_id", "submission_date", "status", "decision_date", "outcome", "outcome_notes"}
	case TableApplicationDocument:
		return []string{"application_id", "institution_id", "document_type", "document_file"}
	default:
		return nil
	}
}

// HasColumn reports whether name is an insertable column of the table.
func (t Table) HasColumn(name string) bool {
	for _, col := range t.Columns() {
		if col == name {
			return true
		}
	}
	return false
}
