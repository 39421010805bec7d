package domain

import (
	"github.com/x-xyz/opensea-metadata/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceWriterRepository interface {
	// Store writes body to path and returns the location it was written to
	Store(ctx.Ctx, string, []byte) (string, error)
}

type WebResourceUseCase interface {
	// GetImageData loads an inline image payload from a data uri or a local file
	GetImageData(ctx.Ctx, string) (string, error)
}
