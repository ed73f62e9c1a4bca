// internal/types/types.go
package types

// EntityID - идентификатор сущности. Выдаётся по возрастанию, поэтому
// порядок ID совпадает с порядком появления.
type EntityID uint64
