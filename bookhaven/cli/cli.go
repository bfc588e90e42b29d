// Package cli holds the bookhaven command tree: the HTTP server and the
// admin commands that work on the persisted collections directly.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/bookhaven/bookhaven/app"
	"github.com/Astemirdum/bookhaven/bookhaven/config"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/model"
	"github.com/Astemirdum/bookhaven/bookhaven/internal/service"
	"github.com/Astemirdum/bookhaven/pkg/kafka"
	"github.com/Astemirdum/bookhaven/pkg/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var collections = []string{model.BooksKey, model.DonationsKey, model.PoemsKey}

type flags struct {
	file   string
	driver string
	dsn    string
}

func (f *flags) options() []config.Option {
	var ops []config.Option
	if f.file != "" {
		ops = append(ops, config.WithFile(f.file))
	}
	if f.driver != "" {
		ops = append(ops, config.WithStoreDriver(f.driver, f.dsn))
	}
	return ops
}

func NewRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:           "bookhaven",
		Short:         "Books, donations, poems and an eBook shelf",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(f)
		},
	}
	root.PersistentFlags().StringVar(&f.file, "config", "", "YAML config file (overrides "+config.FileEnv+")")
	root.PersistentFlags().StringVar(&f.driver, "driver", "", "store driver: memory, sqlite or postgres")
	root.PersistentFlags().StringVar(&f.dsn, "dsn", "", "store DSN, a file path for sqlite")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the web pages and the JSON API",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(f)
			},
		},
		listCmd(f),
		clearCmd(f),
		catalogCmd(),
		eventsCmd(f),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func serve(f *flags) error {
	ops := append([]config.Option{
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	}, f.options()...)
	app.Run(config.NewConfig(ops...))
	return nil
}

// withCore runs fn against the configured store. Logs go to stderr so that
// stdout carries only the command output.
func withCore(ctx context.Context, f *flags, fn func(core *app.Core) error) error {
	cfg, err := config.Load(f.options()...)
	if err != nil {
		return err
	}
	cfg.Kafka.Enable = false
	if cfg.Log.Sink == "" {
		cfg.Log.Sink = logger.StderrSink
	}
	if cfg.Log.LogLevel < zapcore.WarnLevel {
		cfg.Log.LogLevel = zapcore.WarnLevel
	}
	log := logger.NewLogger(cfg.Log, "cli")
	defer func() { _ = log.Sync() }()

	core, err := app.NewCore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer core.Close()
	return fn(core)
}

func listCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:       "list <books|donations|poems>",
		Short:     "Print a stored collection as JSON",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: collections,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withCore(ctx, f, func(core *app.Core) error {
				svc := core.Service
				switch args[0] {
				case model.BooksKey:
					list, err := svc.Books.List(ctx)
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), list)
				case model.DonationsKey:
					list, err := svc.Donations.List(ctx)
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), list)
				default:
					list, err := svc.Poems.List(ctx)
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), list)
				}
			})
		},
	}
}

func clearCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:       "clear <books|donations|poems>",
		Short:     "Destroy a stored collection",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: collections,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withCore(ctx, f, func(core *app.Core) error {
				if err := core.Service.Clear(ctx, args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s cleared\n", args[0])
				return err
			})
		},
	}
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [category]",
		Short: "Print the eBook catalog or one of its categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := service.NewCatalog()
			if len(args) == 0 {
				return printJSON(cmd.OutOrStdout(), catalog.Categories())
			}
			entries, err := catalog.Entries(args[0])
			if err != nil {
				return errors.Wrapf(err, "category %q", args[0])
			}
			return printJSON(cmd.OutOrStdout(), entries)
		},
	}
}

func eventsCmd(f *flags) *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Tail the record events published to Kafka",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.options()...)
			if err != nil {
				return err
			}
			cfg.Log.Sink = logger.StderrSink
			log := logger.NewLogger(cfg.Log, "events")
			defer func() { _ = log.Sync() }()

			consumer, err := kafka.NewConsumerGroup(cfg.Kafka, group)
			if err != nil {
				return errors.Wrap(err, "kafka.NewConsumerGroup")
			}
			defer func() {
				if err := consumer.Close(); err != nil {
					log.Error("consumer close", zap.Error(err))
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			handler := kafka.NewEventHandler(func(_ context.Context, event kafka.RecordEvent) error {
				return enc.Encode(event)
			}, log)
			return kafka.Consume(ctx, consumer, handler, cfg.Kafka.Topic)
		},
	}
	cmd.Flags().StringVar(&group, "group", kafka.RecordsConsumerGroup, "consumer group id")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
