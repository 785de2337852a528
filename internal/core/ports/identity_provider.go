package ports

import (
	"context"

	"spraying/internal/core/domain/model/actor"
)

// IdentityProvider resolves the caller of the current request. It fails with
// errs.ErrPermissionDenied when no authenticated actor is attached to ctx.
type IdentityProvider interface {
	CurrentActor(ctx context.Context) (actor.Actor, error)
}
