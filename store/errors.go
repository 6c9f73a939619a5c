// Package store contains the persistence operations. Item and event mutations
// always check existence before ownership, so a missing id never leaks
// ownership information through a Forbidden response.
package store

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("acting identity does not own this record")
)

// isOwner is the single authorization predicate applied to every
// ownership-scoped mutation.
func isOwner(authorEmail, email string) bool {
	return authorEmail == email
}
