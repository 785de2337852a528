package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"spraying/internal/core/domain/model/actor"
	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/generated/servers"
	"spraying/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var errTokenIsInvalid = errors.New("token is invalid")

// Claims is the bearer token payload. Subject carries the actor id.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

type actorKey struct{}

// WithActor stores the authenticated actor in ctx.
func WithActor(ctx context.Context, a actor.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ContextIdentityProvider reads the actor placed in the request context by
// the JWT middleware.
type ContextIdentityProvider struct{}

func NewContextIdentityProvider() ContextIdentityProvider {
	return ContextIdentityProvider{}
}

func (ContextIdentityProvider) CurrentActor(ctx context.Context) (actor.Actor, error) {
	a, ok := ctx.Value(actorKey{}).(actor.Actor)
	if !ok || a.Validate() != nil {
		return actor.Actor{}, errs.NewPermissionDeniedError("anonymous", "AUTHENTICATE")
	}
	return a, nil
}

// Authenticator verifies HS256 bearer tokens.
type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

func NewAuthenticator(secret string) (*Authenticator, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwt secret")
	}
	return &Authenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Issue signs a token for a. Used by tooling and tests.
func (au *Authenticator) Issue(a actor.Actor, ttl time.Duration) (string, error) {
	roles := make([]string, 0, len(a.Roles()))
	for _, r := range a.Roles() {
		roles = append(roles, r.String())
	}
	now := time.Now()
	claims := Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(au.secret)
}

// Parse validates tokenStr and rebuilds the actor it names.
func (au *Authenticator) Parse(tokenStr string) (actor.Actor, error) {
	claims := &Claims{}
	tok, err := au.parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return au.secret, nil
	})
	if err != nil {
		return actor.Actor{}, fmt.Errorf("%w: %w", errTokenIsInvalid, err)
	}
	if !tok.Valid {
		return actor.Actor{}, errTokenIsInvalid
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return actor.Actor{}, fmt.Errorf("%w: subject: %w", errTokenIsInvalid, err)
	}
	roles := make([]actor.Role, 0, len(claims.Roles))
	for _, raw := range claims.Roles {
		r, err := actor.ParseRole(raw)
		if err != nil {
			return actor.Actor{}, fmt.Errorf("%w: %w", errTokenIsInvalid, err)
		}
		roles = append(roles, r)
	}
	return actor.NewActor(id, roles...)
}

// Middleware rejects requests without a valid bearer token and attaches the
// actor to the request context.
func (au *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, tokenStr, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenStr) == "" {
				return c.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			a, err := au.Parse(strings.TrimSpace(tokenStr))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid bearer token",
				})
			}

			c.SetRequest(c.Request().WithContext(WithActor(c.Request().Context(), a)))
			return next(c)
		}
	}
}
