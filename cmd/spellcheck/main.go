// Command spellcheck is the offline CLI for a trained model database:
// correct text, score it, sample from the model, or complete a prefix.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dlevanto/contextspell/pkg/lm"
	"github.com/dlevanto/contextspell/pkg/spell"
	"github.com/dlevanto/contextspell/pkg/store"

	"github.com/spf13/cobra"
	bolt "go.etcd.io/bbolt"
)

var (
	modelPath string
	alpha     float64
	length    int
	limit     int
)

func loadCorrector() (*spell.Corrector, *lm.NGramLanguageModel, error) {
	db, err := bolt.Open(modelPath, 0600, &bolt.Options{ReadOnly: true})
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	modelStore, err := store.NewModelStore(db)
	if err != nil {
		return nil, nil, err
	}

	snap, err := modelStore.LoadModel()
	if err != nil {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			return nil, nil, fmt.Errorf("no trained model in %s, run the train command first", modelPath)
		}
		return nil, nil, err
	}
	model := lm.FromSnapshot(snap)

	corrector := spell.NewCorrector()
	corrector.SetLanguageModel(model)

	tables, err := modelStore.LoadErrorTables()
	if err != nil {
		if !errors.Is(err, store.ErrSnapshotNotFound) {
			return nil, nil, err
		}
		tables = spell.NewErrorTables()
	}
	corrector.SetErrorTables(tables)

	return corrector, model, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "spellcheck",
		Short: "context-sensitive spelling correction backed by an n-gram language model",
	}
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "model.db", "trained model database")

	checkCmd := &cobra.Command{
		Use:   "check [text]",
		Short: "correct spelling errors in the given text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corrector, _, err := loadCorrector()
			if err != nil {
				return err
			}
			corrected, err := corrector.SpellCheck(strings.Join(args, " "), alpha)
			if err != nil {
				return err
			}
			fmt.Println(corrected)
			return nil
		},
	}
	checkCmd.Flags().Float64Var(&alpha, "alpha", 0.95, "weight of keeping the original text")

	evaluateCmd := &cobra.Command{
		Use:   "evaluate [text]",
		Short: "print the log probability of the given text under the model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corrector, _, err := loadCorrector()
			if err != nil {
				return err
			}
			score, err := corrector.EvaluateText(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Printf("%g\n", score)
			return nil
		},
	}

	generateCmd := &cobra.Command{
		Use:   "generate [context]",
		Short: "sample text from the model, optionally continuing a context",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, model, err := loadCorrector()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Println(model.Generate(length))
				return nil
			}
			fmt.Println(model.GenerateFrom(strings.Join(args, " "), length))
			return nil
		},
	}
	generateCmd.Flags().IntVar(&length, "length", 20, "number of tokens to generate")

	completeCmd := &cobra.Command{
		Use:   "complete [prefix]",
		Short: "list vocabulary words starting with the given prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, model, err := loadCorrector()
			if err != nil {
				return err
			}
			completer, err := spell.NewAutocompleter(model.Vocabulary())
			if err != nil {
				return err
			}
			suggestions, err := completer.Suggest(args[0], limit)
			if err != nil {
				return err
			}
			for _, s := range suggestions {
				fmt.Println(s)
			}
			return nil
		},
	}
	completeCmd.Flags().IntVar(&limit, "limit", 10, "maximum number of suggestions")

	rootCmd.AddCommand(checkCmd, evaluateCmd, generateCmd, completeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
