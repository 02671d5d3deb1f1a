package http

import (
	"fmt"
	"net/http"
	"strings"

	"workshop/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is where the auth middleware stores the authenticated actor.
const actorContextKey = "workshop.actor"

// AuthMiddleware authenticates requests with an HMAC-signed bearer token.
// The token subject carries the user ID and the "role" claim carries one of
// the workshop role names. The resulting actor is stored on the request
// context for the handlers.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return unauthorized(ctx, "missing bearer token")
			}

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return unauthorized(ctx, "invalid token")
			}

			actor, err := actorFromClaims(token.Claims)
			if err != nil {
				return unauthorized(ctx, "invalid identity claims")
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFromClaims builds the domain actor from verified token claims.
func actorFromClaims(claims jwt.Claims) (kernel.Actor, error) {
	subject, err := claims.GetSubject()
	if err != nil {
		return kernel.Actor{}, err
	}
	userID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return kernel.Actor{}, err
	}

	mapClaims, ok := claims.(jwt.MapClaims)
	if !ok {
		return kernel.Actor{}, fmt.Errorf("unsupported claims type %T", claims)
	}
	roleName, _ := mapClaims["role"].(string)
	role, err := kernel.RoleFromString(roleName)
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(userID, role)
}

// ActorFromContext retrieves the actor placed by AuthMiddleware.
func ActorFromContext(ctx echo.Context) (kernel.Actor, error) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, fmt.Errorf("no authenticated actor on request context")
	}
	return actor, nil
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
