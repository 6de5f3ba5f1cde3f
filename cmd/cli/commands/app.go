// Package commands holds one constructor per cobra subcommand, each taking
// the shared *AppContext created once in cmd/cli/main.go's commandsFor and
// filled in by its PersistentPreRunE (the teacher's initApp pattern) rather
// than reaching for ambient globals.
package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/carmelly/peeps-scheduler/internal/config"
	"github.com/carmelly/peeps-scheduler/pkg/data"
	"github.com/carmelly/peeps-scheduler/pkg/history"
)

// AppContext holds the dependencies every subcommand needs.
type AppContext struct {
	Ctx     context.Context
	Cfg     *config.Config
	Logger  *zap.Logger
	Store   *data.FileStore
	History *history.Store
}
