package perm

import (
	"testing"

	"tracker/api/internal/store"
)

func TestPredicates(t *testing.T) {
	admin := store.User{ID: 1, IsAdmin: true}
	author := store.User{ID: 2}
	assignee := store.User{ID: 3}
	outsider := store.User{ID: 4}
	issue := store.Issue{ID: 10, AuthorID: author.ID, AssigneeID: assignee.ID}

	cases := []struct {
		name  string
		got   bool
		allow bool
	}{
		{name: "admin is admin", got: IsAdmin(admin), allow: true},
		{name: "author is not admin", got: IsAdmin(author), allow: false},
		{name: "assignee matches", got: IsAssignee(assignee, issue), allow: true},
		{name: "author is not assignee", got: IsAssignee(author, issue), allow: false},
		{name: "author matches", got: IsAuthor(author, issue.AuthorID), allow: true},
		{name: "outsider is not author", got: IsAuthor(outsider, issue.AuthorID), allow: false},
		{name: "profile owner matches", got: IsProfileOwner(outsider, outsider.ID), allow: true},
		{name: "profile owner mismatch", got: IsProfileOwner(outsider, author.ID), allow: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.allow {
				t.Fatalf("predicate = %v, want %v", tc.got, tc.allow)
			}
		})
	}
}
