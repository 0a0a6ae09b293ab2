package main

import (
	"flag"
	"log"

	"github.com/dlevanto/contextspell/pkg/corpus"
	"github.com/dlevanto/contextspell/pkg/lm"
	"github.com/dlevanto/contextspell/pkg/spell"
	"github.com/dlevanto/contextspell/pkg/store"

	ansi "github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	bolt "go.etcd.io/bbolt"
)

var (
	corpusFile    = flag.String("corpus", "corpus.txt", "training corpus, one text per line")
	confusionFile = flag.String("confusion", "", "spelling confusion file with 'correct: typo1, typo2' lines")
	outFile       = flag.String("o", "model.db", "output database holding the trained model")
	order         = flag.Int("order", 3, "n-gram order of the language model")
	charMode      = flag.Bool("chars", false, "model character sequences instead of words")
)

func main() {
	flag.Parse()

	lines, err := corpus.LoadLines(*corpusFile)
	if err != nil {
		log.Fatal(err)
	}

	opts := []lm.Option{}
	if *charMode {
		opts = append(opts, lm.CharMode())
	}
	model := lm.NewNGramLanguageModel(*order, opts...)

	bar := progressbar.NewOptions(len(lines),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/2]Building Ngram..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	for _, line := range lines {
		model.Build(line)
		bar.Add(1)
	}

	tables := spell.NewErrorTables()
	if *confusionFile != "" {
		tables, err = spell.BuildErrorTablesFromFile(*confusionFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	db, err := bolt.Open(*outFile, 0600, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	modelStore, err := store.NewModelStore(db)
	if err != nil {
		log.Fatal(err)
	}

	bar = progressbar.NewOptions(2,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][2/2]Saving model..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	if err := modelStore.SaveModel(model.Snapshot()); err != nil {
		log.Fatal(err)
	}
	bar.Add(1)

	if err := modelStore.SaveErrorTables(tables); err != nil {
		log.Fatal(err)
	}
	bar.Add(1)

	log.Printf("trained %d-gram model: %d tokens, %d vocabulary words",
		*order, model.TotalTokens(), len(model.Vocabulary()))
}
