package assets

import (
	"go.uber.org/zap"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-cube-train/internal/logger"
	"go-cube-train/internal/shape"
)

// Толщина пластины, которой рисуется грань куба.
const planeThickness = 0.01

type modelKey struct {
	kind     shape.GeometryKind
	a, b, c  float32
	segments [2]int
}

// ModelManager строит меши raylib по описаниям геометрий и кэширует их.
// Геометрии одинакового вида и размера делят одну модель, так что
// живые сущности не держат собственных GPU-буферов.
type ModelManager struct {
	models map[modelKey]rl.Model
}

// NewModelManager создает новый экземпляр ModelManager.
func NewModelManager() *ModelManager {
	return &ModelManager{
		models: make(map[modelKey]rl.Model),
	}
}

func keyOf(g *shape.Geometry) modelKey {
	k := modelKey{kind: g.Kind, segments: g.Segments}
	switch g.Kind {
	case shape.GeometryPlane:
		k.a, k.b = float32(g.Width), float32(g.Height)
	case shape.GeometryTorus:
		k.a, k.b = float32(g.Radius), float32(g.Tube)
	default:
		k.a = float32(g.Radius)
	}
	return k
}

// GetModel возвращает модель для геометрии. Капсула моделью не
// представляется и рисуется напрямую, для неё ok == false.
func (m *ModelManager) GetModel(g *shape.Geometry) (rl.Model, bool) {
	if g == nil || g.Kind == shape.GeometryCapsule {
		return rl.Model{}, false
	}
	key := keyOf(g)
	if model, ok := m.models[key]; ok {
		return model, true
	}

	model := rl.LoadModelFromMesh(genMesh(key))
	if model.MeshCount == 0 {
		logger.Warn("failed to build mesh", zap.Stringer("kind", g.Kind))
		return rl.Model{}, false
	}
	m.models[key] = model
	logger.Debug("mesh cached", zap.Stringer("kind", g.Kind), zap.Int("models", len(m.models)))
	return model, true
}

// Многогранники приближаются сферой с малым числом колец и сегментов.
func genMesh(k modelKey) rl.Mesh {
	switch k.kind {
	case shape.GeometryPlane:
		return rl.GenMeshCube(k.a, k.b, planeThickness)
	case shape.GeometryTetrahedron:
		return rl.GenMeshCone(k.a, k.a*1.4, 3)
	case shape.GeometryOctahedron:
		return rl.GenMeshSphere(k.a, 2, 4)
	case shape.GeometryDodecahedron:
		return rl.GenMeshSphere(k.a, 4, 5)
	case shape.GeometryIcosahedron:
		return rl.GenMeshSphere(k.a, 3, 5)
	case shape.GeometryTorus:
		return rl.GenMeshTorus(k.b/k.a, k.a*2, k.segments[1], k.segments[0])
	default:
		return rl.GenMeshSphere(k.a, k.segments[0], k.segments[1])
	}
}

// Len - число закэшированных моделей.
func (m *ModelManager) Len() int {
	return len(m.models)
}

// Cleanup выгружает все загруженные модели.
func (m *ModelManager) Cleanup() {
	for key, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, key)
	}
	logger.Info("all models unloaded")
}
