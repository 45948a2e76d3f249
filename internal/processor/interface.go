package processor

import "context"

// Processor handles one transcript file end to end.
type Processor interface {
	Process(ctx context.Context, filePath string) error
}
