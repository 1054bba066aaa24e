package usecase_test

import (
	"testing"

	"go-jobmatch-backend/internal/domain"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSearchAuthorization(t *testing.T) {
	t.Run("Candidate tokens cannot list candidates", func(t *testing.T) {
		uc := usecase.NewSearchUsecase(new(MockCandidateRepo))
		_, err := uc.Search(candidateCtx("c1"), "", "", "")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		assert.Contains(t, appErr.Message, "Only companies can view candidates")
	})

	t.Run("Candidate tokens cannot view candidate details", func(t *testing.T) {
		uc := usecase.NewSearchUsecase(new(MockCandidateRepo))
		_, err := uc.GetCandidateByID(candidateCtx("c1"), "c2")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})
}

func TestSearchFilterComposition(t *testing.T) {
	t.Run("No parameters means a zero-value filter", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("Search", mock.Anything, domain.CandidateFilter{}).
			Return([]domain.CandidateSummary{{ID: "c1"}, {ID: "c2"}}, nil)
		uc := usecase.NewSearchUsecase(repo)

		summaries, err := uc.Search(companyCtx("co1"), "", "", "")

		assert.NoError(t, err)
		assert.Len(t, summaries, 2)
		repo.AssertExpectations(t)
	})

	t.Run("Comma lists are split verbatim, no trimming", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("Search", mock.Anything, domain.CandidateFilter{
			Skills:   []string{"Go", " Rust"},
			Location: "berlin",
			Roles:    []string{"Backend Engineer"},
		}).Return([]domain.CandidateSummary{}, nil)
		uc := usecase.NewSearchUsecase(repo)

		_, err := uc.Search(companyCtx("co1"), "Go, Rust", "berlin", "Backend Engineer")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestGetCandidateByID(t *testing.T) {
	t.Run("Returns the full document for companies", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("GetByID", mock.Anything, "c1").Return(&domain.Candidate{
			ID:         "c1",
			Email:      "c1@example.com",
			LinkedInID: "li-c1",
		}, nil)
		uc := usecase.NewSearchUsecase(repo)

		candidate, err := uc.GetCandidateByID(companyCtx("co1"), "c1")

		assert.NoError(t, err)
		// Detail view is deliberately unprojected, unlike search.
		assert.Equal(t, "c1@example.com", candidate.Email)
		assert.Equal(t, "li-c1", candidate.LinkedInID)
	})

	t.Run("Unknown id is NotFound", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("GetByID", mock.Anything, "ghost").Return(nil, nil)
		uc := usecase.NewSearchUsecase(repo)

		_, err := uc.GetCandidateByID(companyCtx("co1"), "ghost")

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Candidate not found", appErr.Message)
	})
}
