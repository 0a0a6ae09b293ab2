package speller_di

import (
	"context"
	"errors"

	"github.com/dlevanto/contextspell/pkg/config"
	"github.com/dlevanto/contextspell/pkg/corpus"
	"github.com/dlevanto/contextspell/pkg/dict"
	"github.com/dlevanto/contextspell/pkg/lm"
	"github.com/dlevanto/contextspell/pkg/spell"
	"github.com/dlevanto/contextspell/pkg/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Components bundles everything the HTTP service needs: the corrector, the
// model behind it, the prefix completer, and the optional custom dictionary.
type Components struct {
	Corrector     *spell.Corrector
	Model         *lm.NGramLanguageModel
	Autocompleter *spell.Autocompleter
	Dict          *dict.CustomDict
}

// New loads the trained model from the store, or trains one from the
// configured corpus when the store is empty.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger,
	modelStore *store.ModelStore) (*Components, error) {
	model, err := loadOrTrain(cfg, log, modelStore)
	if err != nil {
		return nil, err
	}

	corrector := spell.NewCorrector()
	corrector.SetLanguageModel(model)

	tables, err := modelStore.LoadErrorTables()
	if err != nil {
		if !errors.Is(err, store.ErrSnapshotNotFound) {
			return nil, err
		}
		log.Warn("no error tables in store, edit probabilities collapse to the identity weight")
		tables = spell.NewErrorTables()
	}
	corrector.SetErrorTables(tables)

	completer, err := spell.NewAutocompleter(model.Vocabulary())
	if err != nil {
		return nil, err
	}

	components := &Components{
		Corrector:     corrector,
		Model:         model,
		Autocompleter: completer,
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		customDict := dict.New(client)

		words, err := customDict.All(ctx)
		if err != nil {
			return nil, err
		}
		corrector.AddCustomWords(words...)
		log.Info("loaded custom dictionary", zap.Int("words", len(words)))

		components.Dict = customDict

		go func() {
			<-ctx.Done()
			_ = client.Close()
		}()
	}

	return components, nil
}

func loadOrTrain(cfg *config.Config, log *zap.Logger,
	modelStore *store.ModelStore) (*lm.NGramLanguageModel, error) {
	snap, err := modelStore.LoadModel()
	if err == nil {
		log.Info("loaded language model from store",
			zap.Int("order", snap.Order), zap.Bool("char_mode", snap.CharMode))
		return lm.FromSnapshot(snap), nil
	}
	if !errors.Is(err, store.ErrSnapshotNotFound) {
		return nil, err
	}

	if cfg.CorpusPath == "" {
		return nil, errors.New("no trained model in store and CORPUS_PATH is not set")
	}

	log.Info("training language model from corpus", zap.String("path", cfg.CorpusPath))

	opts := []lm.Option{}
	if cfg.CharMode {
		opts = append(opts, lm.CharMode())
	}
	model := lm.NewNGramLanguageModel(cfg.NgramOrder, opts...)

	lines, err := corpus.LoadLines(cfg.CorpusPath)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		model.Build(line)
	}

	if err := modelStore.SaveModel(model.Snapshot()); err != nil {
		return nil, err
	}
	log.Info("trained and saved language model", zap.Int("lines", len(lines)),
		zap.Int("tokens", model.TotalTokens()))

	return model, nil
}
