package contracts

import "context"

type Navigator interface {
	GoTo(ctx context.Context, path string)
}
