package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"finanzas-ai/internal/repository"
	"finanzas-ai/internal/widget"
	"finanzas-ai/pkg/config"
	"finanzas-ai/pkg/logger"
	"finanzas-ai/pkg/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	sourceMemory   = "memory"
	sourcePostgres = "postgres"
)

type renderOptions struct {
	ids    []int
	source string
	set    []string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "balance-widget",
		Short:        "Render the home-screen balance widget",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render widget instances from the preference store",
		Long: `Reads the cached balance and update label and prints the views each
widget instance would show. Missing values render as "$0" and "Sin datos".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.ids, "ids", []int{1}, "widget instance ids")
	cmd.Flags().StringVar(&opts.source, "source", sourceMemory, "preference store: memory or postgres")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "preference for the memory store, as key=value")
	return cmd
}

func runRender(ctx context.Context, out io.Writer, opts *renderOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logger.Level); err != nil {
		return err
	}
	defer logger.Sync()
	appLogger := logger.Get()

	var store widget.Store
	switch opts.source {
	case sourceMemory:
		values, err := widget.ParseAssignments(opts.set)
		if err != nil {
			return err
		}
		store = widget.NewMemoryStore(values)
	case sourcePostgres:
		if len(opts.set) > 0 {
			return fmt.Errorf("--set only applies to the %s source", sourceMemory)
		}
		pool, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			return err
		}
		defer pool.Close()
		store = repository.NewWidgetPreferenceRepository(pool, appLogger)
	default:
		return fmt.Errorf("unknown source %q (supported: %s, %s)", opts.source, sourceMemory, sourcePostgres)
	}

	manager := widget.NewRecordingManager()
	widget.NewBalanceProvider(appLogger).OnUpdate(ctx, manager, opts.ids, store)
	appLogger.Debug("Widgets rendered", zap.Ints("ids", opts.ids), zap.String("source", opts.source))

	return printViews(out, manager)
}

func printViews(out io.Writer, manager *widget.RecordingManager) error {
	for _, id := range manager.IDs() {
		views, _ := manager.Views(id)
		if _, err := fmt.Fprintf(out, "widget %d [%s]\n  %s: %s\n  %s: %s\n",
			id, views.Layout,
			widget.ViewBalance, views.Text(widget.ViewBalance),
			widget.ViewUpdated, views.Text(widget.ViewUpdated),
		); err != nil {
			return err
		}
	}
	return nil
}
