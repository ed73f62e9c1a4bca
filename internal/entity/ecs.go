// internal/entity/ecs.go
package entity

import (
	"go-cube-train/internal/component"
	"go-cube-train/internal/types"
)

// ECS - таблица живых сущностей. Order хранит ID в порядке появления,
// голова очереди - самая старая сущность.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Order       []types.EntityID
	Spawns      map[types.EntityID]*component.Spawn
	Transforms  map[types.EntityID]*component.Transform
	Renderables map[types.EntityID]*component.Renderable
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Order:       make([]types.EntityID, 0, 256),
		Spawns:      make(map[types.EntityID]*component.Spawn),
		Transforms:  make(map[types.EntityID]*component.Transform),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

// NewEntity выдаёт следующий ID и ставит его в хвост очереди.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.Order = append(ecs.Order, id)
	return id
}

// Len - число живых сущностей.
func (ecs *ECS) Len() int {
	return len(ecs.Order)
}

// Head возвращает самую старую сущность.
func (ecs *ECS) Head() (types.EntityID, bool) {
	if len(ecs.Order) == 0 {
		return 0, false
	}
	return ecs.Order[0], true
}

// PopHead снимает голову очереди и возвращает её Renderable, чтобы
// вызывающий освободил ресурсы уже после удаления из таблицы.
func (ecs *ECS) PopHead() (types.EntityID, *component.Renderable, bool) {
	id, ok := ecs.Head()
	if !ok {
		return 0, nil, false
	}
	copy(ecs.Order, ecs.Order[1:])
	ecs.Order = ecs.Order[:len(ecs.Order)-1]
	return id, ecs.detach(id), true
}

// Clear удаляет все сущности и возвращает их Renderable в порядке появления.
func (ecs *ECS) Clear() []*component.Renderable {
	out := make([]*component.Renderable, 0, len(ecs.Order))
	for _, id := range ecs.Order {
		if r := ecs.detach(id); r != nil {
			out = append(out, r)
		}
	}
	ecs.Order = ecs.Order[:0]
	return out
}

func (ecs *ECS) detach(id types.EntityID) *component.Renderable {
	r := ecs.Renderables[id]
	delete(ecs.Spawns, id)
	delete(ecs.Transforms, id)
	delete(ecs.Renderables, id)
	return r
}
