// Package gate answers "is the caller an administrator" and "is the
// marketplace paused". Every mutating marketplace entry point consults it
// first; reads and admin configuration changes bypass the pause flag.
package gate

import (
	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/domain"
)

type Gate interface {
	IsAdmin(ctx ctx.Ctx, address domain.Address) (bool, error)
	IsPaused(ctx ctx.Ctx) (bool, error)
}

type UseCase interface {
	Gate
	Pause(ctx ctx.Ctx, caller domain.Address) error
	Unpause(ctx ctx.Ctx, caller domain.Address) error
}

// Repo persists the pause flag
type Repo interface {
	GetPaused(ctx ctx.Ctx) (bool, error)
	SetPaused(ctx ctx.Ctx, paused bool) error
}
