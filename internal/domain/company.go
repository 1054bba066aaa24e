package domain

import (
	"context"
	"time"
)

type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required,valid_name,no_emoji"`
	Email       string    `json:"email" validate:"required,email"`
	Password    string    `json:"-"` // bcrypt hash, statically excluded from every response
	Logo        string    `json:"logo" validate:"omitempty,url"`
	Industry    string    `json:"industry" validate:"max=100"`
	Location    string    `json:"location" validate:"max=100"`
	Description string    `json:"description" validate:"max=1000,no_emoji"`
	Website     string    `json:"website" validate:"omitempty,url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CompanyPatch is a partial update of the company's own profile.
// email and password are deliberately not patchable, so a profile update can
// never replace the stored hash with client-supplied plaintext.
type CompanyPatch struct {
	Name        *string `json:"name" validate:"omitempty,valid_name,no_emoji"`
	Logo        *string `json:"logo" validate:"omitempty,url"`
	Industry    *string `json:"industry" validate:"omitempty,max=100"`
	Location    *string `json:"location" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000,no_emoji"`
	Website     *string `json:"website" validate:"omitempty,url"`
}

type RegisterCompanyInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginCompanyInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResult is returned by register and login: a freshly minted session
// token plus the minimal company identity the client stores locally.
type AuthResult struct {
	Token   string          `json:"token"`
	Company CompanyIdentity `json:"company"`
}

type CompanyIdentity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*Company, error)
	GetByEmail(ctx context.Context, email string) (*Company, error)
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
}

type CompanyUsecase interface {
	Register(ctx context.Context, input *RegisterCompanyInput) (*AuthResult, error)
	Login(ctx context.Context, input *LoginCompanyInput) (*AuthResult, error)
	GetProfile(ctx context.Context) (*Company, error)
	UpdateProfile(ctx context.Context, patch *CompanyPatch) (*Company, error)
}
