package main

import (
	"path/filepath"
	"strconv"

	"github.com/viney-shih/goroutines"
	bCtx "github.com/x-xyz/opensea-metadata/base/ctx"
	"github.com/x-xyz/opensea-metadata/base/log"
	"github.com/x-xyz/opensea-metadata/domain"
	"github.com/x-xyz/opensea-metadata/domain/nftitem"
	"golang.org/x/xerrors"
)

type generatorCfg struct {
	OutDir        string
	Ext           string
	Workers       int
	MetadataUC    nftitem.MetadataUseCase
	WebResourceUC domain.WebResourceUseCase
}

type generator struct {
	outDir        string
	ext           string
	workers       int
	metadataUC    nftitem.MetadataUseCase
	webResourceUC domain.WebResourceUseCase
}

type job struct {
	path     string
	metadata *nftitem.Metadata
}

func newGenerator(cfg *generatorCfg) *generator {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &generator{
		outDir:        cfg.OutDir,
		ext:           cfg.Ext,
		workers:       workers,
		metadataUC:    cfg.MetadataUC,
		webResourceUC: cfg.WebResourceUC,
	}
}

// jobs converts the manifest items. Items without a file name are named after their index.
func (g *generator) jobs(c bCtx.Ctx, m *manifest) ([]job, error) {
	jobs := make([]job, 0, len(m.Items))
	for i, item := range m.Items {
		spec := item.withDefaults(m.Defaults)
		file := spec.File
		if len(file) == 0 {
			file = strconv.Itoa(i)
		}
		metadata, err := spec.toMetadata()
		if err != nil {
			c.WithFields(log.Fields{
				"item": i,
				"err":  err,
			}).Error("invalid manifest item")
			return nil, xerrors.Errorf("item %d: %w", i, err)
		}
		if len(spec.ImageDataSrc) > 0 {
			imageData, err := g.webResourceUC.GetImageData(c, spec.ImageDataSrc)
			if err != nil {
				c.WithFields(log.Fields{
					"item": i,
					"src":  spec.ImageDataSrc,
					"err":  err,
				}).Error("webResourceUC.GetImageData failed")
				return nil, xerrors.Errorf("item %d: %w", i, err)
			}
			metadata.ImageData = imageData
		}
		jobs = append(jobs, job{path: g.path(file), metadata: metadata})
	}
	return jobs, nil
}

func (g *generator) exampleJob() job {
	return job{path: filepath.Join(g.outDir, exampleFile), metadata: exampleMetadata()}
}

func (g *generator) path(file string) string {
	return filepath.Join(g.outDir, file+g.ext)
}

// saveAll writes every job and returns the number of failed ones. Jobs that have not
// started when c is cancelled are counted as failed without being written.
// Each job has its own path so the writes do not need coordination.
func (g *generator) saveAll(c bCtx.Ctx, jobs []job) int {
	if len(jobs) == 0 {
		return 0
	}
	b := goroutines.NewBatch(g.workers, goroutines.WithBatchSize(len(jobs)))
	defer b.Close()
	for i := 0; i < len(jobs); i++ {
		j := jobs[i]
		b.Queue(func() (interface{}, error) {
			if err := c.Err(); err != nil {
				return j.path, err
			}
			jc := bCtx.WithValues(c, map[string]interface{}{
				"path": j.path,
				"name": j.metadata.Name,
			})
			if err := g.metadataUC.Save(jc, j.metadata, j.path); err != nil {
				return j.path, err
			}
			return j.path, nil
		})
	}
	b.QueueComplete()

	failed := 0
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithFields(log.Fields{
				"path": ret.Value(),
				"err":  ret.Error(),
			}).Error("failed to save metadata")
			failed++
			continue
		}
		c.WithField("path", ret.Value()).Info("metadata saved")
	}
	return failed
}
