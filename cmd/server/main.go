package main

import (
	"log"

	"github.com/dlevanto/contextspell/pkg/config"
	shortcontext "github.com/dlevanto/contextspell/pkg/di/context"
	kv_di "github.com/dlevanto/contextspell/pkg/di/kv"
	logger_di "github.com/dlevanto/contextspell/pkg/di/logger"
	speller_di "github.com/dlevanto/contextspell/pkg/di/speller"
	spellHttp "github.com/dlevanto/contextspell/pkg/http"
	"github.com/dlevanto/contextspell/pkg/http/usecases"

	"go.uber.org/zap"
)

func main() {
	ctx, stop, err := shortcontext.New()
	if err != nil {
		log.Fatal(err)
	}
	defer stop()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	logger, cleanup, err := logger_di.New()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	modelStore, err := kv_di.New(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open model store", zap.Error(err))
	}

	components, err := speller_di.New(ctx, cfg, logger, modelStore)
	if err != nil {
		logger.Fatal("failed to assemble spell corrector", zap.Error(err))
	}

	var wordStore usecases.WordStore
	if components.Dict != nil {
		wordStore = components.Dict
	}
	spellService := usecases.New(logger, components.Corrector, components.Model,
		components.Autocompleter, wordStore, cfg.Alpha)

	api := spellHttp.NewServer(logger)
	if _, err := api.Use(ctx, logger, spellService); err != nil {
		logger.Fatal("api server stopped", zap.Error(err))
	}
}
