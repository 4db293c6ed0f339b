package schema

// CreateViewStatements returns the derived aggregate views. Each is a pure
// aggregation over the base tables, recomputed on every read; nothing is
// materialized.
func CreateViewStatements() []string {
	return []string{
		`CREATE VIEW applicant_summary_view AS
SELECT
    ap.id AS applicant_id,
    ap.first_name,
    ap.last_name,
    i.name AS institution_name,
    ap.gpa,
    COUNT(a.id) AS total_applications,
    COUNT(CASE WHEN a.outcome = 'Accepted' THEN 1 END) AS accepted_count
FROM applicant ap
JOIN institution i ON ap.institution_id = i.id
LEFT JOIN application a ON ap.id = a.applicant_id
GROUP BY ap.id, ap.first_name, ap.last_name, i.name, ap.gpa`,
		`CREATE VIEW application_document_view AS
SELECT
    a.id AS application_id,
    ap.first_name,
    ap.last_name,
    d.document_type,
    d.document_file,
    i.name AS institution_name,
    p.name AS program_name
FROM application a
JOIN applicant ap ON a.applicant_id = ap.id
JOIN program p ON a.program_id = p.id
LEFT JOIN application_document d ON a.id = d.application_id
LEFT JOIN institution i ON ap.institution_id = i.id`,
		`CREATE VIEW program_outcome_view AS
SELECT
    p.id AS program_id,
    p.name AS program_name,
    COUNT(a.id) AS total_applications,
    COUNT(CASE WHEN a.outcome = 'Accepted' THEN 1 END) AS accepted,
    COUNT(CASE WHEN a.outcome = 'Rejected' THEN 1 END) AS rejected,
    COUNT(CASE WHEN a.outcome = 'Pending' THEN 1 END) AS pending,
    ROUND(AVG(ap.gpa), 2) AS avg_applicant_gpa
FROM program p
LEFT JOIN application a ON p.id = a.program_id
LEFT JOIN applicant ap ON a.applicant_id = ap.id
GROUP BY p.id, p.name`,
	}
}
