package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carmelly/peeps-scheduler/cmd/cli/commands"
	"github.com/carmelly/peeps-scheduler/internal/config"
	"github.com/carmelly/peeps-scheduler/internal/logging"
	"github.com/carmelly/peeps-scheduler/pkg/data"
	"github.com/carmelly/peeps-scheduler/pkg/history"
)

var (
	env        string
	dataFolder string
	app        *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "peeps-scheduler",
		Short: "Schedule a dance practice pool's sessions from availability, priority, and pairing preferences",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app == nil {
				return
			}
			if app.History != nil {
				app.History.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (e.g. test, prod) used to pick peeps_config.<env>.yaml")
	rootCmd.PersistentFlags().StringVar(&dataFolder, "data-folder", "", "Override the config's dataFolder")

	rootCmd.AddCommand(commandsFor()...)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func commandsFor() []*cobra.Command {
	// The command tree is built once at startup, before PersistentPreRunE
	// has populated app's fields; every subcommand closure holds this same
	// *AppContext pointer, so initApp's later writes are visible to it.
	app = &commands.AppContext{}
	return []*cobra.Command{
		commands.ScheduleCmd(app),
		commands.ApplyResultsCmd(app),
		commands.ImportPeriodCmd(app),
		commands.BackupCmd(app),
		commands.RestoreCmd(app),
		commands.ListMembersCmd(app),
		commands.GenerateTestDataCmd(app),
		commands.AvailabilityReportCmd(app),
	}
}

// initApp loads config, builds the logger, opens the history store, and
// resolves the data folder's file layout, mirroring the teacher's initApp.
func initApp() error {
	cfg, err := config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dataFolder != "" {
		cfg.DataFolder = dataFolder
	}

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Info("starting", zap.String("environment", env), zap.String("data_folder", cfg.DataFolder))

	hist, err := history.Open(cfg.HistoryDBPath)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}

	store := data.NewFileStore(cfg.DataFolder, cfg.CancellationsFile, cfg.PartnershipsFile)

	app.Ctx = context.Background()
	app.Cfg = cfg
	app.Logger = logger
	app.Store = store
	app.History = hist
	return nil
}
