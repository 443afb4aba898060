// Package access implements the role gates. There are exactly two: a
// non-guest gate for booking operations and an admin gate for catalog and
// management operations. The gates are independent checks, not a hierarchy.
package access

import (
	apperrors "eventbook/pkg/errors"
	"eventbook/pkg/model"
)

// RequireMember rejects guests. Any registered role (user, admin) passes.
func RequireMember(u model.User) *apperrors.AppError {
	if u.Role == model.RoleGuest {
		return apperrors.Forbidden("Guests cannot manage bookings; a registered account is required").
			WithDetails(map[string]any{"user_id": u.ID, "role": string(u.Role)})
	}
	return nil
}

// RequireAdmin rejects everyone but admins.
func RequireAdmin(u model.User) *apperrors.AppError {
	if u.Role != model.RoleAdmin {
		return apperrors.Forbidden("Admin role required").
			WithDetails(map[string]any{"user_id": u.ID, "role": string(u.Role)})
	}
	return nil
}
