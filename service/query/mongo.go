// Package query wraps the mongo driver behind a narrow interface so
// repositories never touch driver types directly.
package query

import (
	"fmt"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")
)

type patchOp struct {
	patchMany bool
}

// PatchOp is an alias for functional argument
type PatchOp func(*patchOp)

// WithPatchMany specifies patchMany setting. To patch all entries selected, set patchMany = true.
func WithPatchMany(patchMany bool) PatchOp {
	return func(o *patchOp) {
		o.patchMany = patchMany
	}
}

// Mongo abstract the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count return counting for matched entry in the table
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Search finds all matched entries with offset/limit/sort
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// Upsert replaces the selected document or inserts it when absent
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Patch $set-updates the selected document, ErrNotFound when nothing matched
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error

	// Remove deletes one selected document, ErrNotFound when nothing matched
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// RemoveAll deletes every selected document
	RemoveAll(context ctx.Ctx, table domain.Table, selector interface{}) (int64, error)
}
