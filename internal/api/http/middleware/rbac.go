package middleware

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/pkg/authorize"
	pasetotoken "github.com/reportcare/reportcare_backend/pkg/paseto"
)

// RequirePermission checks the authenticated account's permission in its lab
// domain. Every account anchors a lab domain keyed by its own ID; member
// accounts carry the member role there, owner accounts the owner role.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return requireInDomain(auth, resource, action, authorize.LabDomain)
}

// RequireSelfPermission checks permissions in the account's private domain
// (profile, sessions, uploads).
func RequireSelfPermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return requireInDomain(auth, resource, action, authorize.UserDomain)
}

func requireInDomain(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action, domainFor func(int) authorize.Domain) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(strconv.Itoa(claims.UserID))
		if err := auth.MustEnforce(c.Context(), subject, domainFor(claims.UserID), resource, action); err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
