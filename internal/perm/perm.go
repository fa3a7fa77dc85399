// Package perm holds the authorization predicates composed by the HTTP
// boundary. Predicates are pure; denial handling lives at the boundary.
package perm

import "tracker/api/internal/store"

func IsAdmin(actor store.User) bool {
	return actor.IsAdmin
}

func IsAssignee(actor store.User, issue store.Issue) bool {
	return issue.AssigneeID == actor.ID
}

// IsAuthor reports whether the actor authored the resource (issue or comment).
func IsAuthor(actor store.User, authorID int64) bool {
	return authorID == actor.ID
}

func IsProfileOwner(actor store.User, userID int64) bool {
	return userID == actor.ID
}
