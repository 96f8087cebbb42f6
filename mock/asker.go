package mock

import (
	"context"

	"github.com/bhilliardga/canvex"
)

var _ canvex.Asker = (*Asker)(nil)

// Asker is a mock implementation of canvex.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}
