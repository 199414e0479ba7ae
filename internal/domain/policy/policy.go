// Package policy is the single authorization decision point for the domain
// engine. Every mutating usecase asks Decide whether an actor may perform an
// action on a resource, so role and ownership rules live in one table
// instead of being repeated per entry point.
package policy

import (
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Action identifies a guarded domain operation.
type Action string

const (
	ActionCreateOffer       Action = "offer.create"
	ActionUpdateOffer       Action = "offer.update"
	ActionDeleteOffer       Action = "offer.delete"
	ActionCreateOrder       Action = "order.create"
	ActionUpdateOrderStatus Action = "order.update_status"
	ActionDeleteOrder       Action = "order.delete"
	ActionCreateReview      Action = "review.create"
	ActionUpdateReview      Action = "review.update"
	ActionDeleteReview      Action = "review.delete"
	ActionUpdateProfile     Action = "profile.update"
)

// Actor is the authenticated identity a request acts as. It is passed
// explicitly into every domain operation; there is no ambient current user.
type Actor struct {
	ID    uuid.UUID
	Role  entity.Role
	Staff bool
}

// Resource carries the ownership facts a decision may depend on. Owner is
// the recorded owner/author of the resource: the offer's publisher, the
// order's business user (for status changes), the review's author, or the
// profile's user. It is ignored for actions without an ownership gate.
type Resource struct {
	Owner uuid.UUID
}

// roleGate maps actions to the role required to perform them at all.
var roleGate = map[Action]entity.Role{
	ActionCreateOffer:  entity.RoleBusiness,
	ActionUpdateOffer:  entity.RoleBusiness,
	ActionDeleteOffer:  entity.RoleBusiness,
	ActionCreateOrder:  entity.RoleCustomer,
	ActionCreateReview: entity.RoleCustomer,
}

// ownerGate marks actions that only the resource's recorded owner may perform.
var ownerGate = map[Action]bool{
	ActionUpdateOffer:       true,
	ActionDeleteOffer:       true,
	ActionUpdateOrderStatus: true,
	ActionUpdateReview:      true,
	ActionDeleteReview:      true,
	ActionUpdateProfile:     true,
}

// Decide reports whether the actor is allowed to perform the action on the
// resource. It is a pure function: same inputs, same answer.
func Decide(actor Actor, action Action, resource Resource) bool {
	// Order deletion is a staff override and nothing else: it is not
	// granted to the order's customer or business.
	if action == ActionDeleteOrder {
		return actor.Staff
	}

	if required, ok := roleGate[action]; ok && actor.Role != required {
		return false
	}

	if ownerGate[action] && actor.ID != resource.Owner {
		return false
	}

	return true
}
