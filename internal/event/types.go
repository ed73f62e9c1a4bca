// internal/event/types.go
package event

import (
	"github.com/google/uuid"

	"go-cube-train/internal/types"
)

const (
	EntitySpawned EventType = "EntitySpawned" // Новая сущность в хвосте очереди
	EntityEvicted EventType = "EntityEvicted" // Голова очереди удалена
	FieldCleared  EventType = "FieldCleared"  // Полная очистка, новая эпоха
	ConfigChanged EventType = "ConfigChanged"
	TickDone      EventType = "TickDone" // Тик завершён, Data - TickData
)

// All перечисляет типы для SubscribeAll.
var All = []EventType{EntitySpawned, EntityEvicted, FieldCleared, ConfigChanged, TickDone}

// EntityData - данные EntitySpawned / EntityEvicted.
type EntityData struct {
	ID    types.EntityID
	Epoch uuid.UUID
	Time  float64
	Angle float64
	Shape string
}

// ClearData - данные FieldCleared.
type ClearData struct {
	Epoch    uuid.UUID // новая эпоха
	Previous uuid.UUID
	Removed  int
	Reason   string
}

// ConfigData - данные ConfigChanged.
type ConfigData struct {
	Field string
	Value string
}

// TickData - данные TickDone.
type TickData struct {
	Time     float64
	Live     int
	Duration float64 // секунды реального времени на тик
}
