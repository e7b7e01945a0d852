package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"interview-hub/internal/database"
	"interview-hub/internal/model"

	"github.com/google/uuid"
)

// SubmissionQuery carries the list filters. Page is 1-indexed.
type SubmissionQuery struct {
	Page       int
	Limit      int
	Search     string
	Company    string
	Difficulty string
}

// SubmissionWithOwner joins a submission with its owner's public fields.
type SubmissionWithOwner struct {
	model.Submission
	OwnerName  string
	OwnerEmail string
}

const submissionColumns = `s.id, s.user_id, s.company, s.position, s.country, s.experience,
	 s.rounds, s.difficulty, s.result, s.salary, s.tips, s.created_at, s.updated_at`

func scanSubmission(row interface{ Scan(dest ...any) error }, s *model.Submission, ownerDest ...any) error {
	var rounds []byte
	dest := []any{
		&s.ID,
		&s.UserID,
		&s.Company,
		&s.Position,
		&s.Country,
		&s.Experience,
		&rounds,
		&s.Difficulty,
		&s.Result,
		&s.Salary,
		&s.Tips,
		&s.CreatedAt,
		&s.UpdatedAt,
	}
	dest = append(dest, ownerDest...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	return json.Unmarshal(rounds, &s.Rounds)
}

func CreateSubmission(ctx context.Context, db database.DB, s *model.Submission) (*model.Submission, error) {
	rounds, err := json.Marshal(s.Rounds)
	if err != nil {
		return nil, fmt.Errorf("CreateSubmission: %w", err)
	}
	s.ID = uuid.New()
	row := db.QueryRow(ctx,
		`INSERT INTO submissions (id, user_id, company, position, country, experience,
		                          rounds, difficulty, result, salary, tips)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at, updated_at`,
		s.ID,
		s.UserID,
		s.Company,
		s.Position,
		s.Country,
		s.Experience,
		rounds,
		s.Difficulty,
		s.Result,
		s.Salary,
		s.Tips,
	)
	if err := row.Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateSubmission: %w", err)
	}
	return s, nil
}

func GetSubmissionByID(ctx context.Context, db database.DB, id uuid.UUID) (*SubmissionWithOwner, error) {
	row := db.QueryRow(ctx,
		`SELECT `+submissionColumns+`, u.name, u.email
		 FROM submissions s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.id = $1`,
		id,
	)
	out := &SubmissionWithOwner{}
	if err := scanSubmission(row, &out.Submission, &out.OwnerName, &out.OwnerEmail); err != nil {
		return nil, fmt.Errorf("GetSubmissionByID: %w", err)
	}
	return out, nil
}

// ListSubmissions returns one page of submissions joined with their owners,
// newest first, plus the total count matching the filters.
func ListSubmissions(ctx context.Context, db database.DB, q SubmissionQuery) ([]SubmissionWithOwner, int, error) {
	where := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if q.Search != "" {
		p := arg("%" + q.Search + "%")
		where = append(where, fmt.Sprintf("(s.company ILIKE %s OR s.position ILIKE %s)", p, p))
	}
	if q.Company != "" {
		where = append(where, "s.company ILIKE "+arg("%"+q.Company+"%"))
	}
	if q.Difficulty != "" {
		where = append(where, "s.difficulty = "+arg(q.Difficulty))
	}
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM submissions s`+cond, args...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListSubmissions: count: %w", err)
	}

	limit := arg(q.Limit)
	offset := arg((q.Page - 1) * q.Limit)
	rows, err := db.Query(ctx,
		`SELECT `+submissionColumns+`, u.name, u.email
		 FROM submissions s
		 JOIN users u ON u.id = s.user_id`+cond+`
		 ORDER BY s.created_at DESC
		 LIMIT `+limit+` OFFSET `+offset,
		args...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListSubmissions: %w", err)
	}
	defer rows.Close()

	items := []SubmissionWithOwner{}
	for rows.Next() {
		var item SubmissionWithOwner
		if err := scanSubmission(rows, &item.Submission, &item.OwnerName, &item.OwnerEmail); err != nil {
			return nil, 0, fmt.Errorf("ListSubmissions: scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListSubmissions: rows: %w", err)
	}
	return items, total, nil
}

// ListSubmissionsByUser returns every submission owned by a user, newest first.
func ListSubmissionsByUser(ctx context.Context, db database.DB, userID int) ([]model.Submission, error) {
	rows, err := db.Query(ctx,
		`SELECT `+submissionColumns+`
		 FROM submissions s
		 WHERE s.user_id = $1
		 ORDER BY s.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSubmissionsByUser: %w", err)
	}
	defer rows.Close()

	items := []model.Submission{}
	for rows.Next() {
		var s model.Submission
		if err := scanSubmission(rows, &s); err != nil {
			return nil, fmt.Errorf("ListSubmissionsByUser: scan: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSubmissionsByUser: rows: %w", err)
	}
	return items, nil
}

// UpdateSubmission replaces every mutable field and refreshes updated_at.
// Ownership is checked by the caller before this runs.
func UpdateSubmission(ctx context.Context, db database.DB, s *model.Submission) error {
	rounds, err := json.Marshal(s.Rounds)
	if err != nil {
		return fmt.Errorf("UpdateSubmission: %w", err)
	}
	row := db.QueryRow(ctx,
		`UPDATE submissions
		 SET company = $1, position = $2, country = $3, experience = $4,
		     rounds = $5, difficulty = $6, result = $7, salary = $8, tips = $9,
		     updated_at = now()
		 WHERE id = $10
		 RETURNING updated_at`,
		s.Company,
		s.Position,
		s.Country,
		s.Experience,
		rounds,
		s.Difficulty,
		s.Result,
		s.Salary,
		s.Tips,
		s.ID,
	)
	if err := row.Scan(&s.UpdatedAt); err != nil {
		return fmt.Errorf("UpdateSubmission: %w", err)
	}
	return nil
}

func DeleteSubmission(ctx context.Context, db database.DB, id uuid.UUID) error {
	_, err := db.Exec(ctx,
		`DELETE FROM submissions WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("DeleteSubmission: %w", err)
	}
	return nil
}
