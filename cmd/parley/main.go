// Command parley runs an interactive conversational bot on the terminal.
//
// The bot answers from a question/answer corpus (YAML or SQLite) using
// TF-IDF similarity, decodes binary numbers, looks up printer error codes
// and falls back to canned responses when nothing matches. Optional flags
// add entity extraction, webhook delivery and cached speech synthesis.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/parrotlabs/parley"
	"github.com/parrotlabs/parley/adapter"
	"github.com/parrotlabs/parley/corpus"
	"github.com/parrotlabs/parley/logging"
	"github.com/parrotlabs/parley/output"
	"github.com/parrotlabs/parley/preprocess"
	"github.com/parrotlabs/parley/similarity"
	"github.com/parrotlabs/parley/speech"
	openaitts "github.com/parrotlabs/parley/speech/openai"
)

var (
	flagCorpusYAML string
	flagCorpusDB   string
	flagWatch      bool
	flagEntities   string
	flagWebhook    string
	flagSpeak      bool
	flagTTSCache   string
	flagLogLevel   string
	flagLogFormat  string
	flagFallbacks  []string
)

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Interactive conversational bot",
	Long: `Starts a read-eval-print loop that answers utterances from a
question/answer corpus, decodes binary numbers, looks up printer error codes
and falls back to canned responses.

Type /reset to clear session state, /session to inspect it and /exit to quit.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&flagCorpusYAML, "corpus", "", "path to a YAML corpus file")
	rootCmd.Flags().StringVar(&flagCorpusDB, "corpus-db", "", "path to a SQLite corpus database")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload the YAML corpus when the file changes")
	rootCmd.Flags().StringVar(&flagEntities, "entities", "", "path to a YAML entity vocabulary (category -> entity list)")
	rootCmd.Flags().StringVar(&flagWebhook, "webhook", "", "POST winning responses to this URL as JSON")
	rootCmd.Flags().BoolVar(&flagSpeak, "speak", false, "synthesize winning responses via OpenAI text-to-speech")
	rootCmd.Flags().StringVar(&flagTTSCache, "tts-cache", ".parley/tts", "directory for cached synthesized audio")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flagLogFormat, "log-format", "text", "log format (text or json)")
	rootCmd.Flags().StringSliceVar(&flagFallbacks, "fallback", []string{
		"I am sorry, but I do not understand.",
		"Could you rephrase that?",
	}, "canned low-confidence fallback responses")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewSlogLogger(logging.ParseLogLevel(flagLogLevel), flagLogFormat)

	bot := parley.New(func(o *parley.Options) {
		o.Logger = logger
	})

	if flagEntities != "" {
		vocabulary, err := loadVocabulary(flagEntities)
		if err != nil {
			return err
		}
		bot.RegisterPreProcessor(preprocess.NewEntityExtractor(vocabulary, func(o *preprocess.Options) {
			o.Logger = logger
		}))
	}

	store, watcher, err := buildCorpus(ctx, logger)
	if err != nil {
		return err
	}
	if watcher != nil {
		defer watcher.Close()
		go watcher.Run(ctx)
	}

	// Registration order matters: the fallback goes first so any
	// equally-confident real adapter beats it on the tie-break.
	bot.RegisterLogicAdapter(adapter.NewLowConfidence(0.25, flagFallbacks))
	if store != nil {
		bot.RegisterLogicAdapter(adapter.NewCorpus(store, similarity.NewTFIDF()))
	}
	bot.RegisterLogicAdapters(adapter.NewBinary(), adapter.NewErrorCode())

	bot.RegisterOutputSink(output.NewConsole(cmd.OutOrStdout()))
	if flagWebhook != "" {
		bot.RegisterOutputSink(output.NewWebhook(flagWebhook))
	}
	if flagSpeak {
		cache, err := speech.NewCache(flagTTSCache)
		if err != nil {
			return err
		}
		bot.RegisterOutputSink(output.NewSpeech(openaitts.NewSynthesizer(), cache, func(o *output.SpeechOptions) {
			o.Logger = logger
		}))
	}

	return repl(ctx, cmd, bot)
}

func buildCorpus(ctx context.Context, logger logging.Logger) (*corpus.Store, *corpus.Watcher, error) {
	switch {
	case flagCorpusYAML != "":
		pairs, err := corpus.LoadYAML(flagCorpusYAML)
		if err != nil {
			return nil, nil, err
		}
		store := corpus.NewStore(pairs...)
		if !flagWatch {
			return store, nil, nil
		}
		watcher, err := corpus.NewWatcher(flagCorpusYAML, store, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, watcher, nil

	case flagCorpusDB != "":
		pairs, err := corpus.LoadSQLite(ctx, flagCorpusDB)
		if err != nil {
			return nil, nil, err
		}
		return corpus.NewStore(pairs...), nil, nil

	default:
		return nil, nil, nil
	}
}

func loadVocabulary(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read entity vocabulary: %w", err)
	}
	var vocabulary map[string][]string
	if err := yaml.Unmarshal(data, &vocabulary); err != nil {
		return nil, fmt.Errorf("parse entity vocabulary: %w", err)
	}
	return vocabulary, nil
}

func repl(ctx context.Context, cmd *cobra.Command, bot *parley.Bot) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintln(out, "parley ready. /reset clears the session, /exit quits.")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/exit", line == "/quit":
			return nil
		case line == "/reset":
			bot.ResetSession()
			fmt.Fprintln(out, "session cleared")
			continue
		case line == "/session":
			snapshot := bot.Session()
			if len(snapshot) == 0 {
				fmt.Fprintln(out, "session is empty")
				continue
			}
			for k, v := range snapshot {
				fmt.Fprintf(out, "%s = %s\n", k, v)
			}
			continue
		}

		resp, err := bot.Ask(ctx, line)
		if err != nil {
			fmt.Fprintln(out, "turn failed:", err)
			continue
		}
		if resp == nil {
			fmt.Fprintln(out, "(no response)")
		}
	}
}
