package repository

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	bCtx "github.com/x-xyz/opensea-metadata/base/ctx"
	"github.com/x-xyz/opensea-metadata/base/log"
	"github.com/x-xyz/opensea-metadata/domain"
	"golang.org/x/xerrors"
)

const (
	defaultDirPerm  = 0755
	defaultFilePerm = 0644
)

type FileWriterRepoCfg struct {
	DirPerm  os.FileMode
	FilePerm os.FileMode
}

type fileWriterRepo struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

func NewFileWriterRepo() domain.WebResourceWriterRepository {
	return NewFileWriterRepoWithCfg(&FileWriterRepoCfg{})
}

func NewFileWriterRepoWithCfg(cfg *FileWriterRepoCfg) domain.WebResourceWriterRepository {
	r := &fileWriterRepo{
		dirPerm:  cfg.DirPerm,
		filePerm: cfg.FilePerm,
	}
	if r.dirPerm == 0 {
		r.dirPerm = defaultDirPerm
	}
	if r.filePerm == 0 {
		r.filePerm = defaultFilePerm
	}
	return r
}

// Store writes body next to path and renames it over path, so readers never observe a partial file.
func (r *fileWriterRepo) Store(c bCtx.Ctx, path string, body []byte) (string, error) {
	if len(path) == 0 {
		return "", xerrors.Errorf("empty path: %w", domain.ErrIo)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, r.dirPerm); err != nil {
		c.WithFields(log.Fields{
			"dir": dir,
			"err": err,
		}).Error("failed to create directory")
		return "", xerrors.Errorf("create directory %s: %v: %w", dir, err, domain.ErrIo)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, body, r.filePerm); err != nil {
		c.WithFields(log.Fields{
			"path": tmp,
			"err":  err,
		}).Error("failed to write file")
		os.Remove(tmp)
		return "", xerrors.Errorf("write %s: %v: %w", path, err, domain.ErrIo)
	}
	if err := os.Rename(tmp, path); err != nil {
		c.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("failed to rename file")
		os.Remove(tmp)
		return "", xerrors.Errorf("write %s: %v: %w", path, err, domain.ErrIo)
	}
	return path, nil
}
