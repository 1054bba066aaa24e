package usecase

import (
	"context"
	"strings"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
)

type searchUsecase struct {
	repo domain.CandidateRepository
}

// NewSearchUsecase builds the company-facing candidate browsing service:
// filtered list with allow-list projection, and full-document detail lookup.
func NewSearchUsecase(repo domain.CandidateRepository) domain.CandidateSearchUsecase {
	return &searchUsecase{repo: repo}
}

func (u *searchUsecase) Search(ctx context.Context, skills, location, roles string) ([]domain.CandidateSummary, error) {
	if _, err := requirePrincipal(ctx, domain.AccountTypeCompany, "Access denied. Only companies can view candidates."); err != nil {
		return nil, err
	}

	filter := domain.CandidateFilter{
		Skills:   splitFilterList(skills),
		Location: location,
		Roles:    splitFilterList(roles),
	}

	summaries, err := u.repo.Search(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return summaries, nil
}

func (u *searchUsecase) GetCandidateByID(ctx context.Context, id string) (*domain.Candidate, error) {
	if _, err := requirePrincipal(ctx, domain.AccountTypeCompany, "Access denied. Only companies can view candidate details."); err != nil {
		return nil, err
	}

	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

// splitFilterList splits a comma-separated query parameter into tokens.
// Tokens are matched verbatim: no trimming, no case folding.
func splitFilterList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
