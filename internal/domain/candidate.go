package domain

import (
	"context"
	"time"
)

type Candidate struct {
	ID             string       `json:"id"`
	LinkedInID     string       `json:"linkedinId"`
	Email          string       `json:"email"`
	FirstName      string       `json:"firstName" validate:"required,valid_name,no_emoji"`
	LastName       string       `json:"lastName" validate:"required,valid_name,no_emoji"`
	ProfilePicture string       `json:"profilePicture" validate:"omitempty,url"`
	Skills         []string     `json:"skills"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Location       string       `json:"location" validate:"max=100"`
	PreferredRoles []string     `json:"preferredRoles"`
	Bio            string       `json:"bio" validate:"max=500,no_emoji"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

type Experience struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"` // nil means ongoing
	Description string     `json:"description"`
}

type Education struct {
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// CandidatePatch is a partial update of the candidate's own profile.
// Identity fields (email, linkedinId) are deliberately not patchable.
type CandidatePatch struct {
	FirstName      *string       `json:"firstName" validate:"omitempty,valid_name,no_emoji"`
	LastName       *string       `json:"lastName" validate:"omitempty,valid_name,no_emoji"`
	ProfilePicture *string       `json:"profilePicture" validate:"omitempty,url"`
	Skills         *[]string     `json:"skills"`
	Experience     *[]Experience `json:"experience"`
	Education      *[]Education  `json:"education"`
	Location       *string       `json:"location" validate:"omitempty,max=100"`
	PreferredRoles *[]string     `json:"preferredRoles"`
	Bio            *string       `json:"bio" validate:"omitempty,max=500,no_emoji"`
}

// CandidateSummary is the allow-list projection returned by search.
// email and linkedinId must never appear here.
type CandidateSummary struct {
	ID             string   `json:"id"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	ProfilePicture string   `json:"profilePicture"`
	Skills         []string `json:"skills"`
	Location       string   `json:"location"`
	PreferredRoles []string `json:"preferredRoles"`
}

func NewCandidateSummary(c *Candidate) CandidateSummary {
	return CandidateSummary{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		ProfilePicture: c.ProfilePicture,
		Skills:         c.Skills,
		Location:       c.Location,
		PreferredRoles: c.PreferredRoles,
	}
}

// CandidateFilter holds the optional search predicates. A zero-value filter
// matches every candidate; supplied predicates are combined with AND.
type CandidateFilter struct {
	Skills   []string // exact, case-sensitive set intersection
	Location string   // case-insensitive substring
	Roles    []string // exact, case-sensitive set intersection
}

type CandidateRepository interface {
	GetByID(ctx context.Context, id string) (*Candidate, error)
	GetByLinkedInID(ctx context.Context, linkedinID string) (*Candidate, error)
	Create(ctx context.Context, candidate *Candidate) error
	Update(ctx context.Context, candidate *Candidate) error
	Search(ctx context.Context, filter CandidateFilter) ([]CandidateSummary, error)
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context) (*Candidate, error)
	UpdateProfile(ctx context.Context, patch *CandidatePatch) (*Candidate, error)
}

type CandidateSearchUsecase interface {
	Search(ctx context.Context, skills, location, roles string) ([]CandidateSummary, error)
	GetCandidateByID(ctx context.Context, id string) (*Candidate, error)
}
