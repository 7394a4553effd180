package authz

import (
	"errors"

	"shiptrack/internal/models"
)

// ErrUnauthorized means the principal is authenticated but its role does not
// permit the attempted action. Mapped to 403 at the HTTP layer.
var ErrUnauthorized = errors.New("unauthorized")

// Principal is the authenticated actor behind a request.
type Principal struct {
	ID       uint
	Username string
	Role     models.UserRole
}

type Action string

const (
	ActionCreateRecord Action = "record:create"
	ActionEditRecord   Action = "record:edit"
	ActionDeleteRecord Action = "record:delete"
)

type roleSet map[models.UserRole]struct{}

func roles(rs ...models.UserRole) roleSet {
	set := roleSet{}
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

// policy is the single place that maps actions to the roles allowed to
// perform them.
var policy = map[Action]roleSet{
	ActionCreateRecord: roles(models.RoleAdmin, models.RoleCollaborator),
	ActionEditRecord:   roles(models.RoleAdmin),
	ActionDeleteRecord: roles(models.RoleAdmin),
}

// Allowed reports whether the role may perform the action. Unknown actions
// are denied.
func Allowed(role models.UserRole, action Action) bool {
	set, ok := policy[action]
	if !ok {
		return false
	}
	_, ok = set[role]
	return ok
}

// Authorize is Allowed with an error result, for call sites that propagate.
func Authorize(p Principal, action Action) error {
	if !Allowed(p.Role, action) {
		return ErrUnauthorized
	}
	return nil
}
