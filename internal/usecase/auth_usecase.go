package usecase

import (
	"context"
	"time"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/pkg/apperror"
	"go-jobmatch-backend/pkg/logger"

	"github.com/google/uuid"
)

type authUsecase struct {
	candidates domain.CandidateRepository
	federation domain.FederationAdapter
	tokens     TokenMinter
}

// NewAuthUsecase builds the candidate federation flow: authorization URL,
// code exchange, find-or-create, token mint.
func NewAuthUsecase(candidates domain.CandidateRepository, federation domain.FederationAdapter, tokens TokenMinter) domain.AuthUsecase {
	return &authUsecase{candidates: candidates, federation: federation, tokens: tokens}
}

func (u *authUsecase) AuthorizationURL() string {
	return u.federation.AuthURL()
}

func (u *authUsecase) HandleCallback(ctx context.Context, code string) (*domain.CandidateAuth, error) {
	if code == "" {
		return nil, apperror.BadRequest("Missing authorization code")
	}

	// A failed exchange is terminal and must not leave a candidate behind;
	// nothing is written until the profile claims are in hand.
	profile, err := u.federation.Exchange(ctx, code)
	if err != nil {
		logger.Log.Error("Federation exchange failed", "error", err)
		return nil, apperror.Internal(err)
	}

	candidate, err := u.candidates.GetByLinkedInID(ctx, profile.Sub)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if candidate == nil {
		now := time.Now()
		candidate = &domain.Candidate{
			ID:             uuid.NewString(),
			LinkedInID:     profile.Sub,
			Email:          profile.Email,
			FirstName:      profile.GivenName,
			LastName:       profile.FamilyName,
			ProfilePicture: profile.Picture,
			Skills:         []string{},
			Experience:     []domain.Experience{},
			Education:      []domain.Education{},
			PreferredRoles: []string{},
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := u.candidates.Create(ctx, candidate); err != nil {
			return nil, apperror.Internal(err)
		}
	}

	token, err := u.tokens.Mint(candidate.ID, domain.AccountTypeCandidate)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.CandidateAuth{Token: token, Candidate: candidate}, nil
}
