// Package catalog holds the fixed set of analytical report queries.
//
// The catalog is closed: every entry is a complete, parameterless, read-only
// statement bound to a stable external key. There is no dynamic query
// construction and no user-supplied predicate anywhere in the system.
package catalog

import "fmt"

// Report identifies one entry of the report catalog.
type Report int

const (
	ReportInstitutionDirectory Report = iota + 1
	ReportOpenPrograms
	ReportApplicantsByGPA
	ReportApplicationsBySubmission
	ReportDocumentsByApplication
	ReportSelectivePrograms
	ReportAboveAverageApplicants
	ReportApplicationStatusCounts
	ReportInstitutionGPAStats
	ReportProgramsAboveAverageGPA
	ReportApplicantsMissingTranscript
	ReportProgramsWithAcceptances
	ReportPendingForOpenPrograms
	ReportAcceptedCSNotBusiness
	ReportGPAGapToProgramAverage
	ReportAcceptedApplicantDocuments
	ReportProgramAcceptanceRates
	ReportInstitutionDocumentLoad
	ReportHighGPAPendingApplicants

	reportCount = int(ReportHighGPAPendingApplicants)
)

// Parse resolves an external report key ("1".."19") to its Report value.
func Parse(key string) (Report, error) {
	for r := Report(1); int(r) <= reportCount; r++ {
		if r.Key() == key {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown report key %q", key)
}

// Reports returns every catalog entry in key order.
func Reports() []Report {
	reports := make([]Report, 0, reportCount)
	for r := Report(1); int(r) <= reportCount; r++ {
		reports = append(reports, r)
	}
	return reports
}

// Key returns the external key of the report.
func (r Report) Key() string {
	return fmt.Sprintf("%d", int(r))
}

// Title returns the human-readable description shown in the UI picker.
func (r Report) Title() string {
	return titles[r]
}

// SQL returns the literal query text of the report.
func (r Report) SQL() string {
	return queries[r]
}

var titles = map[Report]string{
	ReportInstitutionDirectory:        "List all institution names and their accreditation status, ordered by name",
	ReportOpenPrograms:                "List all open programs sorted alphabetically",
	ReportApplicantsByGPA:             "List applicants names and GPAs, ordered by GPA descending",
	ReportApplicationsBySubmission:    "List all applications ordered by submission date",
	ReportDocumentsByApplication:      "List all documents submitted, ordered by application ID",
	ReportSelectivePrograms:           "List all programs with a minimum GPA of at least 3.5, from highest to lowest",
	ReportAboveAverageApplicants:      "List applicants with GPA above the average GPA, ordered by GPA descending",
	ReportApplicationStatusCounts:     "Count of applications by status, ordered by count descending",
	ReportInstitutionGPAStats:         "Calculate average, min, max GPAs per institution, including standard deviation",
	ReportProgramsAboveAverageGPA:     "Display programs where applicant GPA > program average GPA",
	ReportApplicantsMissingTranscript: "Show applicants without a submitted transcript",
	ReportProgramsWithAcceptances:     "Show all programs with at least one accepted applicant",
	ReportPendingForOpenPrograms:      "Display all pending/waitlisted applicants for open programs",
	ReportAcceptedCSNotBusiness:       "Show all applicants accepted to Computer Science but not Business Admin",
	ReportGPAGapToProgramAverage:      "Compare applicants average GPA to the programs average GPA",
	ReportAcceptedApplicantDocuments:  "Display all submitted documents and programs of accepted applicants",
	ReportProgramAcceptanceRates:      "Program Acceptance Rate and Average GPA",
	ReportInstitutionDocumentLoad:     "Show average amount of documents per applicant, per institution",
	ReportHighGPAPendingApplicants:    "Display applicants with high GPAs and pending applications",
}

var queries = map[Report]string{
	ReportInstitutionDirectory: `
SELECT DISTINCT name AS institution_name, accreditation_status
FROM institution
ORDER BY name`,
	ReportOpenPrograms: `
SELECT name AS program_name, minimum_gpa, duration_years, enrollment_status
FROM program
WHERE enrollment_status = 'Open'
GROUP BY name, minimum_gpa, duration_years, enrollment_status
ORDER BY name`,
	ReportApplicantsByGPA: `
SELECT DISTINCT first_name, last_name, gpa
FROM applicant
ORDER BY gpa DESC`,
	ReportApplicationsBySubmission: `
SELECT id AS application_id, applicant_id, program_id, submission_date, status
FROM application
GROUP BY id, applicant_id, program_id, submission_date, status
ORDER BY submission_date`,
	ReportDocumentsByApplication: `
SELECT DISTINCT application_id, document_type, document_file
FROM application_document
ORDER BY application_id, document_type`,
	ReportSelectivePrograms: `
SELECT name AS program_name, minimum_gpa, enrollment_status
FROM program
WHERE minimum_gpa >= 3.5
GROUP BY name, minimum_gpa, enrollment_status
ORDER BY minimum_gpa DESC`,
	ReportAboveAverageApplicants: `
SELECT DISTINCT first_name, last_name, gpa
FROM applicant
WHERE gpa > (SELECT AVG(gpa) FROM applicant)
ORDER BY gpa DESC`,
	ReportApplicationStatusCounts: `
SELECT status, COUNT(*) AS application_count
FROM application
GROUP BY status
ORDER BY application_count DESC`,
	ReportInstitutionGPAStats: `
SELECT i.name AS institution_name,
    ROUND(AVG(a.gpa), 2) AS avg_gpa,
    MIN(a.gpa) AS min_gpa,
    MAX(a.gpa) AS max_gpa,
    ROUND(STDDEV(a.gpa), 2) AS stddev_gpa
FROM applicant a
JOIN institution i ON a.institution_id = i.id
GROUP BY i.name
ORDER BY avg_gpa DESC`,
	ReportProgramsAboveAverageGPA: `
SELECT p.name AS program_name, ROUND(AVG(a.gpa), 2) AS program_avg_gpa
FROM program p
JOIN application ap ON p.id = ap.program_id
JOIN applicant a ON ap.applicant_id = a.id
GROUP BY p.name
HAVING AVG(a.gpa) > (SELECT AVG(gpa) FROM applicant)
ORDER BY program_avg_gpa DESC`,
	ReportApplicantsMissingTranscript: `
SELECT ap.first_name, ap.last_name, ap.email
FROM applicant ap
WHERE NOT EXISTS (
    SELECT 1
    FROM application a
    JOIN application_document d ON a.id = d.application_id
    WHERE d.document_type = 'Transcript'
      AND a.applicant_id = ap.id)
ORDER BY ap.last_name`,
	ReportProgramsWithAcceptances: `
SELECT p.name AS program_name, COUNT(a.id) AS accepted_applications
FROM program p
JOIN application a ON p.id = a.program_id
WHERE a.outcome = 'Accepted'
GROUP BY p.name
HAVING COUNT(a.id) > 0
ORDER BY accepted_applications DESC`,
	ReportPendingForOpenPrograms: `
SELECT DISTINCT ap.first_name, ap.last_name, p.name AS program_name, a.status, a.outcome
FROM application a
JOIN applicant ap ON a.applicant_id = ap.id
JOIN program p ON a.program_id = p.id
WHERE p.enrollment_status = 'Open'
  AND a.outcome IN ('Pending', 'Waitlisted')
ORDER BY ap.last_name, p.name`,
	ReportAcceptedCSNotBusiness: `
SELECT ap.first_name, ap.last_name, ap.email, p.name AS program_name
FROM applicant ap
JOIN application a ON ap.id = a.applicant_id
JOIN program p ON a.program_id = p.id
WHERE p.name = 'Computer Science'
  AND a.outcome = 'Accepted'
EXCEPT
SELECT ap.first_name, ap.last_name, ap.email, p.name AS program_name
FROM applicant ap
JOIN application a ON ap.id = a.applicant_id
JOIN program p ON a.program_id = p.id
WHERE p.name = 'Business Admin'
  AND a.outcome = 'Accepted'
ORDER BY last_name`,
	ReportGPAGapToProgramAverage: `
SELECT
    asv.first_name,
    asv.last_name,
    asv.gpa AS applicant_gpa,
    pov.program_name,
    pov.avg_applicant_gpa AS program_avg_gpa,
    (asv.gpa - pov.avg_applicant_gpa) AS gpa_difference
FROM applicant_summary_view asv
JOIN application a ON asv.applicant_id = a.applicant_id
JOIN program_outcome_view pov ON a.program_id = pov.program_id
ORDER BY gpa_difference DESC`,
	ReportAcceptedApplicantDocuments: `
SELECT DISTINCT
    asv.first_name,
    asv.last_name,
    adv.program_name,
    adv.document_type,
    adv.document_file
FROM applicant_summary_view asv
JOIN application_document_view adv
    ON asv.first_name = adv.first_name
   AND asv.last_name = adv.last_name
JOIN program_outcome_view pov
    ON adv.program_name = pov.program_name
WHERE pov.accepted > 0
ORDER BY asv.last_name, adv.program_name`,
	ReportProgramAcceptanceRates: `
SELECT
    pov.program_name,
    pov.total_applications,
    pov.accepted,
    ROUND(pov.accepted * 100.0 / NULLIF(pov.total_applications, 0), 2) AS acceptance_rate,
    pov.avg_applicant_gpa
FROM program_outcome_view pov
WHERE pov.total_applications > 0
ORDER BY acceptance_rate DESC, pov.avg_applicant_gpa DESC`,
	ReportInstitutionDocumentLoad: `
SELECT
    asv.institution_name,
    COUNT(DISTINCT asv.applicant_id) AS total_applicants,
    SUM(asv.accepted_count) AS total_accepted,
    COUNT(DISTINCT adv.document_file) AS total_documents,
    ROUND(COUNT(DISTINCT adv.document_file) * 1.0 / NULLIF(COUNT(DISTINCT asv.applicant_id), 0), 2) AS avg_documents_per_applicant
FROM applicant_summary_view asv
JOIN application_document_view adv
    ON asv.first_name = adv.first_name
   AND asv.last_name = adv.last_name
JOIN program_outcome_view pov
    ON adv.program_name = pov.program_name
GROUP BY asv.institution_name
ORDER BY total_accepted DESC`,
	ReportHighGPAPendingApplicants: `
SELECT DISTINCT
    asv.first_name,
    asv.last_name,
    asv.gpa,
    adv.program_name,
    pov.pending
FROM applicant_summary_view asv
JOIN application_document_view adv
    ON asv.first_name = adv.first_name
   AND asv.last_name = adv.last_name
JOIN program_outcome_view pov
    ON adv.program_name = pov.program_name
WHERE asv.gpa >= 3.7
  AND pov.pending > 0
ORDER BY asv.gpa DESC, adv.program_name`,
}
