package usecase_test

import (
	"context"

	"go-jobmatch-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByLinkedInID(ctx context.Context, linkedinID string) (*domain.Candidate, error) {
	args := m.Called(ctx, linkedinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateRepo) Update(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateRepo) Search(ctx context.Context, filter domain.CandidateFilter) ([]domain.CandidateSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateSummary), args.Error(1)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) GetByEmail(ctx context.Context, email string) (*domain.Company, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}

// captureMinter records the principal it minted for and returns a
// deterministic token.
type captureMinter struct {
	lastID   string
	lastType string
}

func (m *captureMinter) Mint(principalID, accountType string) (string, error) {
	m.lastID = principalID
	m.lastType = accountType
	return "token-" + accountType, nil
}

func candidateCtx(id string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyPrincipalID, id)
	return context.WithValue(ctx, domain.KeyAccountType, domain.AccountTypeCandidate)
}

func companyCtx(id string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyPrincipalID, id)
	return context.WithValue(ctx, domain.KeyAccountType, domain.AccountTypeCompany)
}
