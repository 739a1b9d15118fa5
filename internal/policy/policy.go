// Package policy holds the access predicates for reviews, comments, the
// catalog and the user directory. Predicates are pure functions over the
// caller and the resource owner; handlers and services combine them with
// explicit AND/OR.
package policy

import (
	"net/http"

	"media-review/internal/data/entity"

	"github.com/google/uuid"
)

// IsSafeMethod reports whether the method is read-only.
func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// IsStaff grants on the admin-site flag.
func IsStaff(caller *entity.User) bool {
	return caller != nil && caller.IsStaff
}

// IsModerator grants iff the caller is authenticated with the moderator role.
func IsModerator(caller *entity.User) bool {
	return caller != nil && caller.Role == entity.RoleModerator
}

// IsAuthor grants iff the caller owns the resource.
func IsAuthor(caller *entity.User, authorID uuid.UUID) bool {
	return caller != nil && caller.ID == authorID
}

// CanWriteOwned decides write access to a review or comment: any one of
// author, moderator or staff suffices.
func CanWriteOwned(caller *entity.User, authorID uuid.UUID) bool {
	return IsAuthor(caller, authorID) || IsModerator(caller) || IsStaff(caller)
}

// CanWriteCatalog decides write access to categories, genres and titles.
func CanWriteCatalog(caller *entity.User) bool {
	return IsStaff(caller)
}
