package domain

import "context"

// FederatedProfile is the claim set returned by the identity provider after a
// successful code exchange.
type FederatedProfile struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// FederationAdapter exchanges an authorization code with the third-party
// identity provider. Failures are terminal; callers never retry.
type FederationAdapter interface {
	AuthURL() string
	Exchange(ctx context.Context, code string) (*FederatedProfile, error)
}

// CandidateAuth is the result of a completed federation login: a minted
// session token plus the (possibly just created) candidate document.
type CandidateAuth struct {
	Token     string
	Candidate *Candidate
}

type AuthUsecase interface {
	AuthorizationURL() string
	HandleCallback(ctx context.Context, code string) (*CandidateAuth, error)
}
