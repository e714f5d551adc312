// Package auth identifies who is making a request. Core operations take an
// Actor explicitly instead of reading the current user from context.
package auth

import "barmaja/models"

type Actor struct {
	UserID uint
	Role   string
}

// Anonymous is the zero Actor.
var Anonymous = Actor{}

func ActorFor(user *models.User) Actor {
	if user == nil {
		return Anonymous
	}
	return Actor{UserID: user.ID, Role: user.Role}
}

func (a Actor) IsAuthenticated() bool {
	return a.UserID != 0
}

func (a Actor) IsAdmin() bool {
	return a.IsAuthenticated() && a.Role == models.RoleAdmin
}

// CanModify reports whether the actor may change something owned by ownerID.
func (a Actor) CanModify(ownerID uint) bool {
	return a.IsAdmin() || (a.IsAuthenticated() && a.UserID == ownerID)
}
