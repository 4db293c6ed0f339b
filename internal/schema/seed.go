package schema

// SeedStatements loads the fixed sample dataset: 3 institutions, 3 programs,
// 3 applicants, 3 applications and 5 documents. Ids are explicit so the
// dataset is stable across resets.
func SeedStatements() []string {
	return []string{
		`INSERT INTO institution (id, name, city, state_province, country, accreditation_status) VALUES (1, 'Central Secondary', 'Toronto', 'ON', 'Canada', 'Accredited')`,
		`INSERT INTO institution (id, name, city, state_province, country, accreditation_status) VALUES (2, 'Riverside Academy', 'Vancouver', 'BC', 'Canada', 'Accredited')`,
		`INSERT INTO institution (id, name, city, state_province, country, accreditation_status) VALUES (3, 'Oakwood School', 'London', 'England', 'UK', 'Accredited')`,

		`INSERT INTO program (id, name, minimum_gpa, duration_years, enrollment_status) VALUES (1, 'Computer Science', 3.5, 4, 'Open')`,
		`INSERT INTO program (id, name, minimum_gpa, duration_years, enrollment_status) VALUES (2, 'Business Admin', 3.0, 4, 'Open')`,
		`INSERT INTO program (id, name, minimum_gpa, duration_years, enrollment_status) VALUES (3, 'Engineering', 3.7, 4, 'Closed')`,

		`INSERT INTO applicant (id, first_name, last_name, date_of_birth, email, institution_id, gpa) VALUES (1001, 'John', 'Doe', '2007-05-15', 'john.doe@email.com', 1, 3.8)`,
		`INSERT INTO applicant (id, first_name, last_name, date_of_birth, email, institution_id, gpa) VALUES (1002, 'Jane', 'Smith', '2006-11-22', 'jane.smith@email.com', 2, 3.5)`,
		`INSERT INTO applicant (id, first_name, last_name, date_of_birth, email, institution_id, gpa) VALUES (1003, 'Alice', 'Johnson', '2007-03-10', 'alice.j@email.com', 1, 3.9)`,

		`INSERT INTO application (id, applicant_id, program_id, submission_date, status, decision_date, outcome, outcome_notes) VALUES (1, 1001, 1, '2025-01-15', 'Completed', '2025-03-01', 'Accepted', 'Strong GPA and transcript')`,
		`INSERT INTO application (id, applicant_id, program_id, submission_date, status, decision_date, outcome, outcome_notes) VALUES (2, 1002, 2, '2025-02-10', 'Completed', '2025-03-15', 'Rejected', 'GPA below threshold; weak essay')`,
		`INSERT INTO application (id, applicant_id, program_id, submission_date, status, decision_date, outcome, outcome_notes) VALUES (3, 1003, 1, '2025-01-20', 'Submitted', NULL, 'Pending', 'Awaiting review')`,

		`INSERT INTO application_document (id, application_id, institution_id, document_type, document_file) VALUES (1, 1, 1, 'Transcript', 'transcript_1001.pdf')`,
		`INSERT INTO application_document (id, application_id, institution_id, document_type, document_file) VALUES (2, 1, NULL, 'Essay', 'essay_1001.pdf')`,
		`INSERT INTO application_document (id, application_id, institution_id, document_type, document_file) VALUES (3, 1, NULL, 'Recommendation', 'rec_1001_1.pdf')`,
		`INSERT INTO application_document (id, application_id, institution_id, document_type, document_file) VALUES (4, 2, 2, 'Transcript', 'transcript_1002.pdf')`,
		`INSERT INTO application_document (id, application_id, institution_id, document_type, document_file) VALUES (5, 2, NULL, 'English Test', 'det_1002.pdf')`,
	}
}
