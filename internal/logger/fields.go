// internal/logger/fields.go
package logger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-cube-train/internal/types"
)

// EntityID is the field used for every per-entity log line.
func EntityID(id types.EntityID) zap.Field {
	return zap.Uint64("entity", uint64(id))
}

// Epoch tags a log line with the clear epoch it belongs to.
func Epoch(id uuid.UUID) zap.Field {
	return zap.String("epoch", id.String())
}
