package nftitem

import (
	"github.com/x-xyz/opensea-metadata/base/ctx"
)

type MetadataUseCase interface {
	// Serialize renders the metadata document. It fails with domain.ErrInvalidFormat
	// and returns no output when the metadata is not valid.
	Serialize(ctx.Ctx, *Metadata) ([]byte, error)
	// Save serializes the metadata and writes it to path, creating parent directories.
	Save(ctx.Ctx, *Metadata, string) error
}
