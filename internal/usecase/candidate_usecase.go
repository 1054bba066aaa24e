package usecase

import (
	"context"
	"time"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{repo: repo, validate: validate}
}

func (u *candidateUsecase) GetProfile(ctx context.Context) (*domain.Candidate, error) {
	id, err := requirePrincipal(ctx, domain.AccountTypeCandidate, "Access denied. Not a candidate account.")
	if err != nil {
		return nil, err
	}

	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		// Should not happen for a valid token, but the document may be gone.
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) UpdateProfile(ctx context.Context, patch *domain.CandidatePatch) (*domain.Candidate, error) {
	id, err := requirePrincipal(ctx, domain.AccountTypeCandidate, "Access denied. Not a candidate account.")
	if err != nil {
		return nil, err
	}

	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	applyCandidatePatch(candidate, patch)

	if err := u.validate.Struct(candidate); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	candidate.UpdatedAt = time.Now()
	if err := u.repo.Update(ctx, candidate); err != nil {
		return nil, apperror.Internal(err)
	}
	return candidate, nil
}

// applyCandidatePatch merges the supplied fields onto the stored document.
// Applying the same patch twice yields the same document (modulo updatedAt).
func applyCandidatePatch(c *domain.Candidate, p *domain.CandidatePatch) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		c.LastName = *p.LastName
	}
	if p.ProfilePicture != nil {
		c.ProfilePicture = *p.ProfilePicture
	}
	if p.Skills != nil {
		c.Skills = *p.Skills
	}
	if p.Experience != nil {
		c.Experience = *p.Experience
	}
	if p.Education != nil {
		c.Education = *p.Education
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.PreferredRoles != nil {
		c.PreferredRoles = *p.PreferredRoles
	}
	if p.Bio != nil {
		c.Bio = *p.Bio
	}
}
