// Package guard decides whether a caller may perform an operation and, for
// cat mutations, which rows the operation may touch.
package guard

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/catgateway/internal/domain"
)

// Action is an operation subject to authorization.
type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
	// ActionSelf acts on the caller's own identity record.
	ActionSelf
	// ActionAdmin is reserved to admins.
	ActionAdmin
)

func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionSelf:
		return "self"
	case ActionAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Decision is the outcome of Decide. When Allowed is false, Err says why.
type Decision struct {
	Allowed bool
	Err     error

	// Filter restricts an update or delete. It is complete only when the
	// target id was passed to Decide.
	Filter domain.CatFilter

	// Owner is the id a created record must be assigned to.
	Owner string
}

func deny(err error) Decision {
	return Decision{Err: err}
}

// Decide is a pure function of the caller and the action. A nil caller is
// anonymous.
func Decide(caller *domain.Caller, action Action) Decision {
	return DecideOn(caller, action, uuid.Nil)
}

// DecideOn is Decide for actions that target a single cat.
func DecideOn(caller *domain.Caller, action Action, target uuid.UUID) Decision {
	if action == ActionRead {
		return Decision{Allowed: true}
	}

	if caller == nil || caller.ID == "" {
		return deny(domain.ErrUnauthenticated)
	}

	switch action {
	case ActionCreate:
		return Decision{Allowed: true, Owner: caller.ID}

	case ActionUpdate, ActionDelete:
		filter := domain.CatFilter{ID: target}
		if !caller.IsAdmin() {
			owner := caller.ID
			filter.OwnerID = &owner
		}
		return Decision{Allowed: true, Filter: filter}

	case ActionSelf:
		return Decision{Allowed: true}

	case ActionAdmin:
		if !caller.IsAdmin() {
			return deny(domain.ErrUnauthorized)
		}
		return Decision{Allowed: true}

	default:
		return deny(domain.ErrUnauthorized)
	}
}
