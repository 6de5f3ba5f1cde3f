package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/carmelly/peeps-scheduler/internal/config"
	"github.com/carmelly/peeps-scheduler/pkg/backup"
)

// Backup snapshots the configured data folder into a timestamped archive
// under the configured backup folder (§4.18).
func Backup(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*backup.Manifest, error) {
	destDir := cfg.BackupFolder
	if destDir == "" {
		return nil, fmt.Errorf("backupFolder is not configured")
	}
	logger.Info("creating backup", zap.String("data_folder", cfg.DataFolder), zap.String("dest", destDir))
	manifest, err := backup.Create(cfg.DataFolder, destDir)
	if err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	logger.Info("backup created", zap.String("id", manifest.ID), zap.String("path", manifest.Path))
	return manifest, nil
}

// Restore extracts a previously created archive back into the configured
// data folder, overwriting any files at the same relative paths.
func Restore(ctx context.Context, cfg *config.Config, logger *zap.Logger, archivePath string) error {
	logger.Info("restoring backup", zap.String("archive", archivePath), zap.String("dest", cfg.DataFolder))
	if err := backup.Restore(archivePath, cfg.DataFolder); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}
	logger.Info("backup restored")
	return nil
}
