package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves a processed input file into the archived folder so
// it is not picked up again.
func (p *implProcessor) moveToArchived(ctx context.Context, filePath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(filePath))
	if err := os.Rename(filePath, dest); err != nil {
		// Rename fails across filesystems; fall back to copy+remove.
		data, readErr := os.ReadFile(filePath)
		if readErr != nil {
			return fmt.Errorf("move to archived: %w", err)
		}
		if writeErr := os.WriteFile(dest, data, 0644); writeErr != nil {
			return fmt.Errorf("copy to archived: %w", writeErr)
		}
		if rmErr := os.Remove(filePath); rmErr != nil {
			p.logger.Warn(ctx, "Failed to remove original after copy: %v", rmErr)
		}
	}

	p.logger.Debug(ctx, "Archived input: %s", dest)
	return nil
}
