package usecase

import (
	"bytes"
	"encoding/json"

	bCtx "github.com/x-xyz/opensea-metadata/base/ctx"
	"github.com/x-xyz/opensea-metadata/base/log"
	bValidator "github.com/x-xyz/opensea-metadata/base/validator"
	"github.com/x-xyz/opensea-metadata/domain"
	"github.com/x-xyz/opensea-metadata/domain/nftitem"
	"golang.org/x/xerrors"
)

const indent = "\t"

type MetadataUseCaseCfg struct {
	// Validator defaults to a validator with the base/validator tags registered
	Validator *bValidator.CustomValidator
	Writer    domain.WebResourceWriterRepository
}

type metadataUseCase struct {
	validator *bValidator.CustomValidator
	writer    domain.WebResourceWriterRepository
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) nftitem.MetadataUseCase {
	v := cfg.Validator
	if v == nil {
		v = bValidator.NewCustomValidator(bValidator.New())
	}
	return &metadataUseCase{
		validator: v,
		writer:    cfg.Writer,
	}
}

func (u *metadataUseCase) Serialize(c bCtx.Ctx, metadata *nftitem.Metadata) ([]byte, error) {
	if metadata == nil {
		return nil, xerrors.Errorf("nil metadata: %w", domain.ErrInvalidFormat)
	}
	normalized, err := u.prepare(c, metadata)
	if err != nil {
		return nil, err
	}
	data, err := encode(&normalized)
	if err != nil {
		c.WithFields(log.Fields{
			"name": metadata.Name,
			"err":  err,
		}).Error("failed to encode metadata")
		return nil, xerrors.Errorf("encode metadata: %w", err)
	}
	return data, nil
}

func (u *metadataUseCase) Save(c bCtx.Ctx, metadata *nftitem.Metadata, path string) error {
	data, err := u.Serialize(c, metadata)
	if err != nil {
		return err
	}
	if _, err := u.writer.Store(c, path, data); err != nil {
		c.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("writer.Store failed")
		return err
	}
	c.WithFields(log.Fields{
		"path": path,
		"size": len(data),
	}).Debug("metadata saved")
	return nil
}

// prepare validates metadata and returns a normalized copy of it
func (u *metadataUseCase) prepare(c bCtx.Ctx, metadata *nftitem.Metadata) (nftitem.Metadata, error) {
	if err := u.validator.Validate(metadata); err != nil {
		c.WithFields(log.Fields{
			"name":            metadata.Name,
			"backgroundColor": metadata.BackgroundColor,
			"err":             err,
		}).Warn("invalid metadata")
		return nftitem.Metadata{}, xerrors.Errorf("%s: %w", err.Error(), domain.ErrInvalidFormat)
	}
	return metadata.Normalize(), nil
}

// encode writes v as tab indented json. Markup in descriptions and svg image data is kept as is.
func encode(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
