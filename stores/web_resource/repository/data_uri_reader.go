package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/x-xyz/opensea-metadata/base/ctx"
	"github.com/x-xyz/opensea-metadata/domain"
	"golang.org/x/xerrors"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct {
}

func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, xerrors.Errorf("missing data scheme: %w", domain.ErrInvalidDataUri)
	}
	// data:[<mediatype>][;base64],<data>
	uriParts := strings.SplitN(strings.TrimPrefix(uri, dataUriSchema), ",", 2)
	if len(uriParts) < 2 || len(uriParts[1]) == 0 {
		return nil, xerrors.Errorf("no data part provided: %w", domain.ErrInvalidDataUri)
	}

	if strings.HasSuffix(uriParts[0], ";base64") {
		data, err := base64.StdEncoding.DecodeString(uriParts[1])
		if err != nil {
			return nil, xerrors.Errorf("%v: %w", err, domain.ErrInvalidDataUri)
		}
		return data, nil
	}
	// percent-encoded text, e.g. data:image/svg+xml,%3Csvg%3E
	data, err := url.PathUnescape(uriParts[1])
	if err != nil {
		// treat as plain text
		return []byte(uriParts[1]), nil
	}
	return []byte(data), nil
}
