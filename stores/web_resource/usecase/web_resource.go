package usecase

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	bCtx "github.com/x-xyz/opensea-metadata/base/ctx"
	"github.com/x-xyz/opensea-metadata/base/log"
	"github.com/x-xyz/opensea-metadata/domain"
	"golang.org/x/xerrors"
)

const (
	dataUriPrefix = "data:"
	svgMimeType   = "image/svg+xml"
)

type WebResourceUseCaseCfg struct {
	FileReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
}

type webResourceUseCase struct {
	fileReader    domain.WebResourceReaderRepository
	dataUriReader domain.WebResourceReaderRepository
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		fileReader:    cfg.FileReader,
		dataUriReader: cfg.DataUriReader,
	}
}

// GetImageData returns svg payloads as raw markup and other images as base64 data uris.
func (u *webResourceUseCase) GetImageData(c bCtx.Ctx, ref string) (string, error) {
	data, err := u.get(c, ref)
	if err != nil {
		return "", err
	}

	mtype := mimetype.Detect(data)
	if mtype.Is(svgMimeType) {
		return string(data), nil
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		c.WithFields(log.Fields{
			"ref":      ref,
			"mimetype": mtype.String(),
		}).Warn("not an image")
		return "", xerrors.Errorf("%s: %w", mtype.String(), domain.ErrUnsupportedMimeType)
	}
	return dataUriPrefix + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (u *webResourceUseCase) get(c bCtx.Ctx, ref string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(ref, dataUriPrefix) {
		data, err = u.dataUriReader.Get(c, ref)
	} else {
		data, err = u.fileReader.Get(c, ref)
	}
	if err != nil {
		c.WithFields(log.Fields{
			"ref": ref,
			"err": err,
		}).Error("failed to read image data")
		return nil, err
	}
	return data, nil
}
