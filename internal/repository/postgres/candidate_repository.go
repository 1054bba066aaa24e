package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-jobmatch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `
	id, linkedin_id, email, first_name, last_name,
	COALESCE(profile_picture, ''), skills,
	COALESCE(experience, '[]'), COALESCE(education, '[]'),
	COALESCE(location, ''), preferred_roles, COALESCE(bio, ''),
	created_at, updated_at`

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	return r.scanCandidate(r.db.QueryRow(ctx, query, id))
}

func (r *candidateRepository) GetByLinkedInID(ctx context.Context, linkedinID string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE linkedin_id = $1`
	return r.scanCandidate(r.db.QueryRow(ctx, query, linkedinID))
}

func (r *candidateRepository) scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	var skills, roles []string
	var experience, education []byte

	err := row.Scan(
		&c.ID, &c.LinkedInID, &c.Email, &c.FirstName, &c.LastName,
		&c.ProfilePicture, pq.Array(&skills),
		&experience, &education,
		&c.Location, pq.Array(&roles), &c.Bio,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	c.Skills = skills
	c.PreferredRoles = roles
	if err := json.Unmarshal(experience, &c.Experience); err != nil {
		return nil, fmt.Errorf("failed to decode experience: %w", err)
	}
	if err := json.Unmarshal(education, &c.Education); err != nil {
		return nil, fmt.Errorf("failed to decode education: %w", err)
	}
	return &c, nil
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	experience, err := json.Marshal(candidate.Experience)
	if err != nil {
		return err
	}
	education, err := json.Marshal(candidate.Education)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO candidates (
			id, linkedin_id, email, first_name, last_name, profile_picture,
			skills, experience, education, location, preferred_roles, bio,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err = r.db.Exec(ctx, query,
		candidate.ID, candidate.LinkedInID, candidate.Email,
		candidate.FirstName, candidate.LastName, candidate.ProfilePicture,
		pq.Array(candidate.Skills), experience, education,
		candidate.Location, pq.Array(candidate.PreferredRoles), candidate.Bio,
		candidate.CreatedAt, candidate.UpdatedAt,
	)
	return err
}

func (r *candidateRepository) Update(ctx context.Context, candidate *domain.Candidate) error {
	experience, err := json.Marshal(candidate.Experience)
	if err != nil {
		return err
	}
	education, err := json.Marshal(candidate.Education)
	if err != nil {
		return err
	}

	query := `
		UPDATE candidates SET
			first_name = $1, last_name = $2, profile_picture = $3,
			skills = $4, experience = $5, education = $6,
			location = $7, preferred_roles = $8, bio = $9,
			updated_at = $10
		WHERE id = $11`

	_, err = r.db.Exec(ctx, query,
		candidate.FirstName, candidate.LastName, candidate.ProfilePicture,
		pq.Array(candidate.Skills), experience, education,
		candidate.Location, pq.Array(candidate.PreferredRoles), candidate.Bio,
		candidate.UpdatedAt, candidate.ID,
	)
	return err
}

func (r *candidateRepository) Search(ctx context.Context, filter domain.CandidateFilter) ([]domain.CandidateSummary, error) {
	query, args := buildCandidateSearchQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search candidates: %w", err)
	}
	defer rows.Close()

	summaries := []domain.CandidateSummary{}
	for rows.Next() {
		var s domain.CandidateSummary
		var skills, roles []string
		err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.ProfilePicture,
			pq.Array(&skills), &s.Location, pq.Array(&roles),
		)
		if err != nil {
			return nil, err
		}
		s.Skills = skills
		s.PreferredRoles = roles
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
