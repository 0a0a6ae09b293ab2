//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/dlevanto/contextspell/pkg/config"
	shortcontext "github.com/dlevanto/contextspell/pkg/di/context"
	kv_di "github.com/dlevanto/contextspell/pkg/di/kv"
	logger_di "github.com/dlevanto/contextspell/pkg/di/logger"
	speller_di "github.com/dlevanto/contextspell/pkg/di/speller"
	spellHttp "github.com/dlevanto/contextspell/pkg/http"
	"github.com/dlevanto/contextspell/pkg/http/http-router/controllers"
	"github.com/dlevanto/contextspell/pkg/http/usecases"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	speller_di.New,
)

var spellerSet = wire.NewSet(
	defaultSet,
	NewSpellService,
	NewSpellAPIServer,
)

func NewSpellService(log *zap.Logger, cfg *config.Config,
	components *speller_di.Components) controllers.SpellService {
	var wordStore usecases.WordStore
	if components.Dict != nil {
		wordStore = components.Dict
	}
	return usecases.New(log, components.Corrector, components.Model,
		components.Autocompleter, wordStore, cfg.Alpha)
}

func NewSpellAPIServer(ctx context.Context, log *zap.Logger,
	spellService controllers.SpellService) (*spellHttp.Server, error) {
	api := spellHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, spellService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeSpellerService() (*spellHttp.Server, func(), error) {

	panic(wire.Build(spellerSet))
}
