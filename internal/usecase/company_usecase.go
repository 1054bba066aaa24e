package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type companyUsecase struct {
	repo     domain.CompanyRepository
	tokens   TokenMinter
	validate *validator.Validate
}

func NewCompanyUsecase(repo domain.CompanyRepository, tokens TokenMinter, validate *validator.Validate) domain.CompanyUsecase {
	return &companyUsecase{repo: repo, tokens: tokens, validate: validate}
}

func (u *companyUsecase) Register(ctx context.Context, input *domain.RegisterCompanyInput) (*domain.AuthResult, error) {
	existing, err := u.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.BadRequest("Company with this email already exists")
	}

	// Fresh random salt per write; the plaintext is never stored or logged.
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	company := &domain.Company{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.repo.Create(ctx, company); err != nil {
		// The store maps the unique-violation race to a duplicate-email
		// AppError; anything else is a server failure.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.Internal(err)
	}

	return u.mintAuthResult(company)
}

func (u *companyUsecase) Login(ctx context.Context, input *domain.LoginCompanyInput) (*domain.AuthResult, error) {
	company, err := u.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	// Identical message for unknown email and wrong password so login
	// failures never leak account existence.
	if company == nil {
		return nil, apperror.BadRequest("Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(company.Password), []byte(input.Password)) != nil {
		return nil, apperror.BadRequest("Invalid email or password")
	}

	return u.mintAuthResult(company)
}

func (u *companyUsecase) mintAuthResult(company *domain.Company) (*domain.AuthResult, error) {
	token, err := u.tokens.Mint(company.ID, domain.AccountTypeCompany)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{
		Token: token,
		Company: domain.CompanyIdentity{
			ID:    company.ID,
			Name:  company.Name,
			Email: company.Email,
		},
	}, nil
}

func (u *companyUsecase) GetProfile(ctx context.Context) (*domain.Company, error) {
	id, err := requirePrincipal(ctx, domain.AccountTypeCompany, "Access denied. Not a company account.")
	if err != nil {
		return nil, err
	}

	company, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if company == nil {
		return nil, apperror.NotFound("Company not found")
	}
	return company, nil
}

func (u *companyUsecase) UpdateProfile(ctx context.Context, patch *domain.CompanyPatch) (*domain.Company, error) {
	id, err := requirePrincipal(ctx, domain.AccountTypeCompany, "Access denied. Not a company account.")
	if err != nil {
		return nil, err
	}

	company, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if company == nil {
		return nil, apperror.NotFound("Company not found")
	}

	applyCompanyPatch(company, patch)

	if err := u.validate.Struct(company); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	company.UpdatedAt = time.Now()
	if err := u.repo.Update(ctx, company); err != nil {
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func applyCompanyPatch(c *domain.Company, p *domain.CompanyPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Logo != nil {
		c.Logo = *p.Logo
	}
	if p.Industry != nil {
		c.Industry = *p.Industry
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Website != nil {
		c.Website = *p.Website
	}
}
