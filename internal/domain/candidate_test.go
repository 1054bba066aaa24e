package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-jobmatch-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateSummaryProjection(t *testing.T) {
	candidate := &domain.Candidate{
		ID:             "c1",
		LinkedInID:     "li-sub-1",
		Email:          "ada@example.com",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		ProfilePicture: "https://cdn.example.com/ada.jpg",
		Skills:         []string{"Go", "Rust"},
		Location:       "Berlin",
		PreferredRoles: []string{"Backend Engineer"},
		Bio:            "Analytical engines",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	summary := domain.NewCandidateSummary(candidate)

	raw, err := json.Marshal(summary)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	// Exactly the allow-list, nothing else.
	assert.Len(t, fields, 7)
	for _, key := range []string{"id", "firstName", "lastName", "profilePicture", "skills", "location", "preferredRoles"} {
		assert.Contains(t, fields, key)
	}
	assert.NotContains(t, fields, "email")
	assert.NotContains(t, fields, "linkedinId")
	assert.NotContains(t, fields, "bio")
}

func TestCandidateFullDocumentKeepsIdentity(t *testing.T) {
	candidate := &domain.Candidate{ID: "c1", LinkedInID: "li-sub-1", Email: "ada@example.com"}

	raw, err := json.Marshal(candidate)
	require.NoError(t, err)

	// The detail view intentionally exposes the identity fields.
	assert.Contains(t, string(raw), `"email":"ada@example.com"`)
	assert.Contains(t, string(raw), `"linkedinId":"li-sub-1"`)
}
