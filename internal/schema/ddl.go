package schema

import "fmt"

// Dialect selects the SQL flavor the DDL is rendered for.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// ParseDialect maps a gorm dialector name to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch name {
	case "postgres":
		return DialectPostgres, nil
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database dialect %q", name)
	}
}

// identityColumn renders the identity primary key clause. Ids are generated
// by the store itself rather than computed client-side, so concurrent
// inserts can never race to the same id.
func (d Dialect) identityColumn() string {
	if d == DialectSQLite {
		// rowid alias: auto-assigned when omitted, explicit seed ids allowed.
		return "id INTEGER PRIMARY KEY"
	}
	return "id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY"
}

// CreateTableStatements returns the base table DDL in dependency order.
//
// The date rules ("date of birth and submission date must not be in the
// future") are row checks against CURRENT_DATE, so a future date fails at
// write time. The compound check on application encodes the two valid
// logical states: decided (Accepted/Rejected/Waitlisted, Completed, decision
// date on or after submission) and undecided (Pending, no decision date,
// Submitted or Under Review).
func CreateTableStatements(dialect Dialect) []string {
	id := dialect.identityColumn()

	return []string{
		fmt.Sprintf(`CREATE TABLE institution (
    %s,
    name VARCHAR(100) NOT NULL,
    city VARCHAR(50) NOT NULL,
    state_province VARCHAR(50),
    country VARCHAR(50) NOT NULL,
    accreditation_status VARCHAR(20) NOT NULL CHECK (accreditation_status IN ('Accredited', 'Provisional', 'Unaccredited'))
)`, id),
		fmt.Sprintf(`CREATE TABLE program (
    %s,
    name VARCHAR(100) NOT NULL,
    minimum_gpa NUMERIC(3,2) NOT NULL CHECK (minimum_gpa BETWEEN 0.0 AND 4.0),
    duration_years INTEGER NOT NULL CHECK (duration_years > 0),
    enrollment_status VARCHAR(10) NOT NULL CHECK (enrollment_status IN ('Open', 'Closed'))
)`, id),
		fmt.Sprintf(`CREATE TABLE applicant (
    %s,
    first_name VARCHAR(50) NOT NULL,
    last_name VARCHAR(50) NOT NULL,
    date_of_birth DATE NOT NULL,
    email VARCHAR(100) NOT NULL UNIQUE,
    institution_id INTEGER NOT NULL,
    gpa NUMERIC(3,2) NOT NULL CHECK (gpa BETWEEN 0.0 AND 4.0),
    CONSTRAINT ck_applicant_birth_not_future CHECK (date_of_birth <= CURRENT_DATE),
    CONSTRAINT fk_applicant_institution FOREIGN KEY (institution_id) REFERENCES institution (id)
)`, id),
		fmt.Sprintf(`CREATE TABLE application (
    %s,
    applicant_id INTEGER NOT NULL,
    program_id INTEGER NOT NULL,
    submission_date DATE NOT NULL DEFAULT CURRENT_DATE,
    status VARCHAR(20) NOT NULL DEFAULT 'Submitted' CHECK (status IN ('Submitted', 'Under Review', 'Completed')),
    decision_date DATE,
    outcome VARCHAR(20) NOT NULL CHECK (outcome IN ('Accepted', 'Rejected', 'Pending', 'Waitlisted')),
    outcome_notes VARCHAR(1000),
    CONSTRAINT ck_application_submission_not_future CHECK (submission_date <= CURRENT_DATE),
    CONSTRAINT ck_application_decision CHECK (
        (outcome IN ('Accepted', 'Rejected', 'Waitlisted') AND status = 'Completed' AND decision_date IS NOT NULL AND decision_date >= submission_date)
        OR (outcome = 'Pending' AND decision_date IS NULL AND status IN ('Submitted', 'Under Review'))
    ),
    CONSTRAINT fk_application_applicant FOREIGN KEY (applicant_id) REFERENCES applicant (id),
    CONSTRAINT fk_application_program FOREIGN KEY (program_id) REFERENCES program (id)
)`, id),
		fmt.Sprintf(`CREATE TABLE application_document (
    %s,
    application_id INTEGER NOT NULL,
    institution_id INTEGER,
    document_type VARCHAR(50) NOT NULL CHECK (document_type IN ('Transcript', 'Essay', 'Recommendation', 'Certificate', 'English Test')),
    document_file VARCHAR(255) NOT NULL,
    CONSTRAINT ck_document_transcript_institution CHECK (document_type <> 'Transcript' OR institution_id IS NOT NULL),
    CONSTRAINT fk_document_application FOREIGN KEY (application_id) REFERENCES application (id) ON DELETE CASCADE,
    CONSTRAINT fk_document_institution FOREIGN KEY (institution_id) REFERENCES institution (id)
)`, id),
	}
}

// DropStatements tears the schema down: views first, then tables child
// before parent. IF EXISTS makes the drop phase safe against a fresh store
// while still surfacing real failures.
func DropStatements() []string {
	return []string{
		"DROP VIEW IF EXISTS applicant_summary_view",
		"DROP VIEW IF EXISTS application_document_view",
		"DROP VIEW IF EXISTS program_outcome_view",
		"DROP TABLE IF EXISTS application_document",
		"DROP TABLE IF EXISTS application",
		"DROP TABLE IF EXISTS applicant",
		"DROP TABLE IF EXISTS program",
		"DROP TABLE IF EXISTS institution",
	}
}

// PostSeedStatements realigns identity generation with the explicit ids the
// seed dataset carries. SQLite derives the next rowid from the current
// maximum on its own.
func PostSeedStatements(dialect Dialect) []string {
	if dialect != DialectPostgres {
		return nil
	}

	statements := make([]string, 0, len(Tables()))
	for _, table := range Tables() {
		statements = append(statements, fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))", table.Name()))
	}
	return statements
}

// ResetStatements is the full reinitialization script: drop everything,
// recreate tables and views, load the seed dataset, resync identities.
func ResetStatements(dialect Dialect) []string {
	statements := DropStatements()
	statements = append(statements, CreateTableStatements(dialect)...)
	statements = append(statements, CreateViewStatements()...)
	statements = append(statements, SeedStatements()...)
	statements = append(statements, PostSeedStatements(dialect)...)
	return statements
}
