package repository

import (
	"os"
	"strings"

	bCtx "github.com/x-xyz/opensea-metadata/base/ctx"
	"github.com/x-xyz/opensea-metadata/base/log"
	"github.com/x-xyz/opensea-metadata/domain"
	"golang.org/x/xerrors"
)

const fileSchema = "file://"

type fileReaderRepo struct {
}

func NewFileReaderRepo() domain.WebResourceReaderRepository {
	return &fileReaderRepo{}
}

// Get reads a local file. Both plain paths and file:// uris are accepted.
func (r *fileReaderRepo) Get(c bCtx.Ctx, path string) ([]byte, error) {
	path = strings.TrimPrefix(path, fileSchema)
	data, err := os.ReadFile(path)
	if err != nil {
		c.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("failed to read file")
		return nil, xerrors.Errorf("read %s: %v: %w", path, err, domain.ErrIo)
	}
	return data, nil
}
