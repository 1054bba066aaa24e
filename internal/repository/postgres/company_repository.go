package postgres

import (
	"context"
	"errors"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepository struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepository{db: db}
}

const companyColumns = `
	id, name, email, password_hash,
	COALESCE(logo, ''), COALESCE(industry, ''), COALESCE(location, ''),
	COALESCE(description, ''), COALESCE(website, ''),
	created_at, updated_at`

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanCompany(r.db.QueryRow(ctx, query, id))
}

func (r *companyRepository) GetByEmail(ctx context.Context, email string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE email = $1`
	return r.scanCompany(r.db.QueryRow(ctx, query, email))
}

func (r *companyRepository) scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Password,
		&c.Logo, &c.Industry, &c.Location,
		&c.Description, &c.Website,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (
			id, name, email, password_hash, logo, industry, location,
			description, website, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Email, company.Password,
		company.Logo, company.Industry, company.Location,
		company.Description, company.Website,
		company.CreatedAt, company.UpdatedAt,
	)
	if isUniqueViolation(err) {
		// Covers the race between the pre-check and the insert.
		return apperror.BadRequest("Company with this email already exists")
	}
	return err
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	query := `
		UPDATE companies SET
			name = $1, logo = $2, industry = $3, location = $4,
			description = $5, website = $6, updated_at = $7
		WHERE id = $8`

	_, err := r.db.Exec(ctx, query,
		company.Name, company.Logo, company.Industry, company.Location,
		company.Description, company.Website, company.UpdatedAt,
		company.ID,
	)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
