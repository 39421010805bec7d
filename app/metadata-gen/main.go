package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	bCtx "github.com/x-xyz/opensea-metadata/base/ctx"
	"github.com/x-xyz/opensea-metadata/base/log"
	"github.com/x-xyz/opensea-metadata/base/validator"
	metadata_usecase "github.com/x-xyz/opensea-metadata/stores/metadata/usecase"
	webresource_repository "github.com/x-xyz/opensea-metadata/stores/web_resource/repository"
	webresource_usecase "github.com/x-xyz/opensea-metadata/stores/web_resource/usecase"
)

func init() {
	pflag.String("config", "", "manifest file (yaml, json or toml)")
	pflag.String("out", "metadata", "output directory")
	pflag.String("ext", "", "extension appended to every output file name")
	pflag.Int("workers", 4, "number of files written concurrently")
	pflag.Bool("example", false, "also write the OpenSea sample item")
	pflag.Bool("debug", false, "debug logging")
}

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()
	v := viper.New()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}
	if err := log.SetDebug(v.GetBool("debug")); err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			ctx.WithField("signal", sig.String()).Warn("interrupted, skipping items not yet written")
			cancel()
		case <-ctx.Done():
		}
	}()

	if cfgFile := v.GetString("config"); len(cfgFile) > 0 {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			ctx.WithFields(log.Fields{
				"config": cfgFile,
				"err":    err,
			}).Error("failed to read config")
			return 1
		}
	}

	outDir := v.GetString("out")
	ext := v.GetString("ext")
	workers := v.GetInt("workers")
	ctx.WithFields(log.Fields{
		"config":  v.ConfigFileUsed(),
		"out":     outDir,
		"ext":     ext,
		"workers": workers,
	}).Info("config")

	// repos
	fileWriterRepo := webresource_repository.NewFileWriterRepo()
	fileReaderRepo := webresource_repository.NewFileReaderRepo()
	datauriRepo := webresource_repository.NewDataUriReaderRepo()

	// usecases
	metadataUseCase := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		Validator: validator.NewCustomValidator(validator.New()),
		Writer:    fileWriterRepo,
	})
	webResourceUseCase := webresource_usecase.NewWebResourceUseCase(&webresource_usecase.WebResourceUseCaseCfg{
		FileReader:    fileReaderRepo,
		DataUriReader: datauriRepo,
	})

	g := newGenerator(&generatorCfg{
		OutDir:        outDir,
		Ext:           ext,
		Workers:       workers,
		MetadataUC:    metadataUseCase,
		WebResourceUC: webResourceUseCase,
	})

	m, err := loadManifest(v)
	if err != nil {
		ctx.WithField("err", err).Error("loadManifest failed")
		return 1
	}
	jobs, err := g.jobs(ctx, m)
	if err != nil {
		return 1
	}
	if v.GetBool("example") {
		jobs = append(jobs, g.exampleJob())
	}
	if len(jobs) == 0 {
		ctx.Warn("nothing to write, pass --config or --example")
		return 0
	}

	if failed := g.saveAll(ctx, jobs); failed > 0 {
		ctx.WithFields(log.Fields{
			"failed": failed,
			"total":  len(jobs),
		}).Error("some items were not saved")
		return 1
	}
	ctx.WithField("total", len(jobs)).Info("done")
	return 0
}
