package domain

type CtxKey string

const (
	KeyPrincipalID CtxKey = "PrincipalID"
	KeyAccountType CtxKey = "AccountType"
)

// Account types are flat capabilities, not a role hierarchy.
const (
	AccountTypeCandidate = "candidate"
	AccountTypeCompany   = "company"
)
