package postgres

import (
	"strings"
	"testing"

	"go-jobmatch-backend/internal/domain"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBuildCandidateSearchQuery(t *testing.T) {
	t.Run("No filters matches all candidates", func(t *testing.T) {
		query, args := buildCandidateSearchQuery(domain.CandidateFilter{})

		assert.NotContains(t, query, "WHERE")
		assert.Empty(t, args)
	})

	t.Run("Skills filter uses array overlap", func(t *testing.T) {
		query, args := buildCandidateSearchQuery(domain.CandidateFilter{Skills: []string{"Go", "Rust"}})

		assert.Contains(t, query, "WHERE skills && $1")
		assert.Len(t, args, 1)
		assert.Equal(t, pq.Array([]string{"Go", "Rust"}), args[0])
	})

	t.Run("Location filter is a case-insensitive substring", func(t *testing.T) {
		query, args := buildCandidateSearchQuery(domain.CandidateFilter{Location: "berlin"})

		assert.Contains(t, query, "WHERE location ILIKE $1")
		assert.Equal(t, []any{"%berlin%"}, args)
	})

	t.Run("Roles filter uses array overlap on preferred_roles", func(t *testing.T) {
		query, args := buildCandidateSearchQuery(domain.CandidateFilter{Roles: []string{"Backend Engineer"}})

		assert.Contains(t, query, "WHERE preferred_roles && $1")
		assert.Equal(t, pq.Array([]string{"Backend Engineer"}), args[0])
	})

	t.Run("Multiple filters are conjunctive", func(t *testing.T) {
		query, args := buildCandidateSearchQuery(domain.CandidateFilter{
			Skills:   []string{"Go"},
			Location: "Berlin",
			Roles:    []string{"Backend Engineer"},
		})

		assert.Contains(t, query, "skills && $1 AND location ILIKE $2 AND preferred_roles && $3")
		assert.Len(t, args, 3)
		assert.Equal(t, "%Berlin%", args[1])
	})

	t.Run("Projection never selects sensitive columns", func(t *testing.T) {
		query, _ := buildCandidateSearchQuery(domain.CandidateFilter{})

		selectList := query[:strings.Index(query, "FROM")]
		assert.NotContains(t, selectList, "email")
		assert.NotContains(t, selectList, "linkedin_id")
		assert.NotContains(t, selectList, "bio")
		for _, col := range []string{"id", "first_name", "last_name", "profile_picture", "skills", "location", "preferred_roles"} {
			assert.Contains(t, selectList, col)
		}
	})
}
