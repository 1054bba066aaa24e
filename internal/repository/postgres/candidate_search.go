package postgres

import (
	"fmt"
	"strings"

	"go-jobmatch-backend/internal/domain"

	"github.com/lib/pq"
)

// buildCandidateSearchQuery translates the optional filter predicates into a
// single SELECT over the candidate collection. The SELECT list is the summary
// allow-list; sensitive columns (email, linkedin_id) are never part of it.
//
// Matching rules:
//   - skills/roles: array overlap (&&), exact case-sensitive tokens
//   - location: case-insensitive substring; NULL or empty location never
//     matches a non-empty filter
//   - supplied predicates combine with AND; absent ones impose nothing
func buildCandidateSearchQuery(filter domain.CandidateFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, first_name, last_name, COALESCE(profile_picture, ''), skills, COALESCE(location, ''), preferred_roles FROM candidates`)

	var conds []string
	var args []any

	if len(filter.Skills) > 0 {
		args = append(args, pq.Array(filter.Skills))
		conds = append(conds, fmt.Sprintf("skills && $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if len(filter.Roles) > 0 {
		args = append(args, pq.Array(filter.Roles))
		conds = append(conds, fmt.Sprintf("preferred_roles && $%d", len(args)))
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	return sb.String(), args
}
