// Package mysql is the persistence gateway. It owns the SQL for jobs,
// resumes, candidate records, and notifications, and enforces status
// preconditions at the database so concurrent workers cannot race a record
// into an illegal state.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"talentscreen/internal/candidate"
	"talentscreen/internal/errors"
)

// Store executes all queries against the MySQL pool.
type Store struct {
	db     *sql.DB
	logger *errors.Logger
}

// NewStore wraps an open pool.
func NewStore(db *sql.DB, logger *errors.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// DB exposes the underlying pool for health checks.
func (s *Store) DB() *sql.DB {
	return s.db
}

// LoadJobText returns the raw description of a job posting.
func (s *Store) LoadJobText(ctx context.Context, jobID int64) (string, error) {
	const q = `SELECT description FROM jobs WHERE id = ? LIMIT 1;`

	var text string
	err := s.db.QueryRowContext(ctx, q, jobID).Scan(&text)
	if err == sql.ErrNoRows {
		return "", errors.NewPersistenceError(errors.ErrCodeRecordNotFound,
			fmt.Sprintf("job %d not found", jobID), nil)
	}
	if err != nil {
		return "", errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to load job text", err)
	}
	return text, nil
}

// LoadResumeText returns the resume text for a candidate record. Internal
// applications read the user's parsed resume; external candidates carry the
// raw text on the record itself.
func (s *Store) LoadResumeText(ctx context.Context, ref candidate.Ref) (string, error) {
	var q string
	var key int64
	if ref.Kind == candidate.KindExternal {
		q = `SELECT raw_resume_text FROM external_candidates WHERE id = ? LIMIT 1;`
		key = ref.CandidateID
	} else {
		q = `SELECT parsed_text FROM resumes WHERE user_id = ? LIMIT 1;`
		key = ref.UserID
	}

	var text sql.NullString
	err := s.db.QueryRowContext(ctx, q, key).Scan(&text)
	if err == sql.ErrNoRows {
		return "", errors.NewPersistenceError(errors.ErrCodeRecordNotFound,
			fmt.Sprintf("resume text for %s not found", ref), nil)
	}
	if err != nil {
		return "", errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to load resume text", err)
	}
	if !text.Valid || text.String == "" {
		return "", errors.NewPersistenceError(errors.ErrCodeRecordNotFound,
			fmt.Sprintf("resume text for %s is empty", ref), nil)
	}
	return text.String, nil
}

// LoadStatus returns the current lifecycle status of a candidate record.
func (s *Store) LoadStatus(ctx context.Context, ref candidate.Ref) (candidate.Status, error) {
	var q string
	var args []any
	if ref.Kind == candidate.KindExternal {
		q = `SELECT status FROM external_candidates WHERE id = ? LIMIT 1;`
		args = []any{ref.CandidateID}
	} else {
		q = `SELECT status FROM job_applications WHERE job_id = ? AND user_id = ? LIMIT 1;`
		args = []any{ref.JobID, ref.UserID}
	}

	var status string
	err := s.db.QueryRowContext(ctx, q, args...).Scan(&status)
	if err == sql.ErrNoRows {
		return "", errors.NewPersistenceError(errors.ErrCodeRecordNotFound,
			fmt.Sprintf("%s not found", ref), nil)
	}
	if err != nil {
		return "", errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to load status", err)
	}
	return candidate.Status(status), nil
}

// UpdateStatus performs a compare-and-set status transition. The edge is
// validated against the lifecycle first; the WHERE clause then guarantees the
// record really was in the expected state when the update landed.
func (s *Store) UpdateStatus(ctx context.Context, ref candidate.Ref, from, to candidate.Status) error {
	if err := candidate.Transition(ref.Kind, from, to); err != nil {
		return err
	}

	var q string
	var args []any
	if ref.Kind == candidate.KindExternal {
		q = `UPDATE external_candidates SET status = ? WHERE id = ? AND status = ?;`
		args = []any{string(to), ref.CandidateID, string(from)}
	} else {
		q = `UPDATE job_applications SET status = ?, updated_at = NOW()
WHERE job_id = ? AND user_id = ? AND status = ?;`
		args = []any{string(to), ref.JobID, ref.UserID, string(from)}
	}

	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to update status", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to read rows affected", err)
	}
	if n == 0 {
		return s.explainMissedUpdate(ctx, ref, to)
	}
	return nil
}

// explainMissedUpdate turns a zero-row CAS update into a precise error: the
// record is either gone or sitting in a state the edge does not allow.
func (s *Store) explainMissedUpdate(ctx context.Context, ref candidate.Ref, to candidate.Status) error {
	current, err := s.LoadStatus(ctx, ref)
	if err != nil {
		return err
	}
	return &candidate.IllegalTransitionError{Kind: ref.Kind, From: current, To: to}
}

// CommitAnalysis stores both analysis documents and the final score, and
// moves the record to analyzed, in one transaction. The status precondition
// admits only states with a legal edge to analyzed, so a record that was
// rejected mid-flight keeps its documents untouched.
func (s *Store) CommitAnalysis(ctx context.Context, ref candidate.Ref, result candidate.AnalysisResult) error {
	candidateJSON, err := json.Marshal(result.CandidateDoc)
	if err != nil {
		return errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to encode candidate analysis", err)
	}
	interviewerJSON, err := json.Marshal(result.InterviewerDoc)
	if err != nil {
		return errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to encode interviewer analysis", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to begin transaction", err)
	}
	defer tx.Rollback()

	var q string
	var args []any
	if ref.Kind == candidate.KindExternal {
		q = `UPDATE external_candidates
SET analysis_candidate = ?, analysis_interviewer = ?, final_score = ?, status = ?, error_reason = NULL
WHERE id = ? AND status IN (?, ?);`
		args = []any{
			candidateJSON, interviewerJSON, result.FinalScore, string(candidate.StatusAnalyzed),
			ref.CandidateID,
			string(candidate.StatusQueued), string(candidate.StatusAnalyzed),
		}
	} else {
		q = `UPDATE job_applications
SET analysis_candidate = ?, analysis_interviewer = ?, final_score = ?, status = ?, updated_at = NOW()
WHERE job_id = ? AND user_id = ? AND status IN (?, ?, ?);`
		args = []any{
			candidateJSON, interviewerJSON, result.FinalScore, string(candidate.StatusAnalyzed),
			ref.JobID, ref.UserID,
			string(candidate.StatusApproved), string(candidate.StatusProcessing), string(candidate.StatusAnalyzed),
		}
	}

	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to commit analysis", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to read rows affected", err)
	}
	if n == 0 {
		return s.explainMissedUpdate(ctx, ref, candidate.StatusAnalyzed)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to commit transaction", err)
	}
	return nil
}

// MarkAnalysisFailed records a terminal extraction or analysis failure on an
// external candidate so the ranking can surface the reason.
func (s *Store) MarkAnalysisFailed(ctx context.Context, candidateID int64, reason string) error {
	const q = `UPDATE external_candidates
SET status = ?, error_reason = ?
WHERE id = ? AND status IN (?, ?);`

	_, err := s.db.ExecContext(ctx, q,
		string(candidate.StatusAnalyzed), reason,
		candidateID,
		string(candidate.StatusQueued), string(candidate.StatusAnalyzed))
	if err != nil {
		return errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to mark analysis failure", err)
	}
	return nil
}

// CreateApplication inserts a new internal application in requested state.
func (s *Store) CreateApplication(ctx context.Context, jobID, userID int64) (int64, error) {
	const q = `INSERT INTO job_applications (job_id, user_id, status, created_at, updated_at)
VALUES (?, ?, ?, NOW(), NOW());`

	res, err := s.db.ExecContext(ctx, q, jobID, userID, string(candidate.InitialStatus(candidate.KindInternal)))
	if err != nil {
		return 0, errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to create application", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to read inserted application id", err)
	}
	return id, nil
}

// CreateExternal inserts a bulk-uploaded candidate in queued state and
// returns its id for the work item.
func (s *Store) CreateExternal(ctx context.Context, jobID int64, name, email, rawResumeText string) (int64, error) {
	const q = `INSERT INTO external_candidates (job_id, name, email, raw_resume_text, status, created_at)
VALUES (?, ?, ?, ?, ?, NOW());`

	res, err := s.db.ExecContext(ctx, q, jobID, name, email, rawResumeText,
		string(candidate.InitialStatus(candidate.KindExternal)))
	if err != nil {
		return 0, errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to create external candidate", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to read inserted candidate id", err)
	}
	return id, nil
}

// GetApplication loads one internal application by its composite key.
func (s *Store) GetApplication(ctx context.Context, jobID, userID int64) (*candidate.Application, error) {
	const q = `SELECT id, job_id, user_id, status, final_score, created_at, updated_at
FROM job_applications
WHERE job_id = ? AND user_id = ? LIMIT 1;`

	var app candidate.Application
	var status string
	var score sql.NullFloat64
	err := s.db.QueryRowContext(ctx, q, jobID, userID).Scan(
		&app.ID, &app.JobID, &app.UserID, &status, &score, &app.CreatedAt, &app.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewPersistenceError(errors.ErrCodeRecordNotFound,
			fmt.Sprintf("application for user %d on job %d not found", userID, jobID), nil)
	}
	if err != nil {
		return nil, errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to load application", err)
	}
	app.Status = candidate.Status(status)
	if score.Valid {
		app.FinalScore = &score.Float64
	}
	return &app, nil
}

// LoadBatch returns the ranking inputs for every external candidate on a job,
// ordered by insertion. Unscored entries carry their stored failure reason.
func (s *Store) LoadBatch(ctx context.Context, jobID int64) ([]candidate.RankedCandidate, error) {
	const q = `SELECT id, name, final_score, error_reason
FROM external_candidates
WHERE job_id = ?
ORDER BY id;`

	rows, err := s.db.QueryContext(ctx, q, jobID)
	if err != nil {
		return nil, errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to load candidate batch", err)
	}
	defer rows.Close()

	var out []candidate.RankedCandidate
	for rows.Next() {
		var rc candidate.RankedCandidate
		var score sql.NullFloat64
		var reason sql.NullString
		if err := rows.Scan(&rc.CandidateID, &rc.Name, &score, &reason); err != nil {
			return nil, errors.NewPersistenceError(errors.ErrCodeCommitFailed,
				"failed to scan candidate row", err)
		}
		if score.Valid {
			rc.Score = &score.Float64
		}
		if reason.Valid {
			rc.ErrorReason = reason.String
		}
		out = append(out, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to iterate candidate batch", err)
	}
	return out, nil
}

// CountPending reports how many external candidates on a job have not yet
// reached a terminal analysis state.
func (s *Store) CountPending(ctx context.Context, jobID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM external_candidates WHERE job_id = ? AND status = ?;`

	var n int
	err := s.db.QueryRowContext(ctx, q, jobID, string(candidate.StatusQueued)).Scan(&n)
	if err != nil {
		return 0, errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to count pending candidates", err)
	}
	return n, nil
}

// MarkShortlisted promotes the selected analyzed candidates to shortlisted.
func (s *Store) MarkShortlisted(ctx context.Context, jobID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	q := fmt.Sprintf(`UPDATE external_candidates
SET status = ?
WHERE job_id = ? AND id IN (%s) AND status = ?;`, placeholders)

	args := make([]any, 0, len(ids)+3)
	args = append(args, string(candidate.StatusShortlisted), jobID)
	for _, id := range ids {
		args = append(args, id)
	}
	args = append(args, string(candidate.StatusAnalyzed))

	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return errors.NewPersistenceError(errors.ErrCodeCommitFailed,
			"failed to mark shortlisted candidates", err)
	}
	return nil
}

// InsertNotification appends a user-visible notification.
func (s *Store) InsertNotification(ctx context.Context, userID int64, message string) error {
	const q = `INSERT INTO notifications (user_id, message, created_at) VALUES (?, ?, NOW());`

	if _, err := s.db.ExecContext(ctx, q, userID, message); err != nil {
		return errors.NewPersistenceError(errors.ErrCodeNotificationFailed,
			"failed to insert notification", err)
	}
	return nil
}
