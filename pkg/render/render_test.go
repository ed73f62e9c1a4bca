package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-cube-train/internal/config"
	"go-cube-train/internal/shape"
	"go-cube-train/internal/utils"
	"go-cube-train/internal/view"
)

func TestViewportProject(t *testing.T) {
	vp := Viewport{Width: 80, Height: 24, Aspect: 2}

	x, y, ok := vp.Project(0, 0)
	require.True(t, ok)
	assert.Equal(t, 40, x)
	assert.Equal(t, 12, y)

	// one world unit is one row and two columns at this size
	x, y, ok = vp.Project(1, 1)
	require.True(t, ok)
	assert.Equal(t, 42, x)
	assert.Equal(t, 13, y)

	_, _, ok = vp.Project(100, 0)
	assert.False(t, ok)
	_, _, ok = vp.Project(0, -100)
	assert.False(t, ok)
}

func TestFaceColorOfSingleFace(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	faces := []shape.Face{{Material: &shape.Material{Color: red}}}
	assert.Equal(t, red, FaceColor(faces))
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, FaceColor(nil))
}

func TestFadeEndpoints(t *testing.T) {
	c := color.RGBA{255, 255, 0, 255}
	assert.Equal(t, c, Fade(c, config.BackgroundColor, 0))

	faded := Fade(c, config.BackgroundColor, 1)
	assert.Less(t, faded.R, c.R)
	assert.Equal(t, c.A, faded.A)
}

func TestDarkenColor(t *testing.T) {
	d := DarkenColor(color.RGBA{200, 100, 50, 255})
	assert.InDelta(t, 100, int(d.R), 1)
	assert.InDelta(t, 50, int(d.G), 1)
	assert.InDelta(t, 25, int(d.B), 1)
}

func TestTerminalRender(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 25)
	defer screen.Fini()

	factory := shape.NewFactory(utils.NewPRNGService(1), shape.NewTracker())
	cube, err := factory.Build("cube", 1)
	require.NoError(t, err)

	cfg := config.Default()
	f := view.Frame{
		Config: *cfg,
		Entities: []view.EntityView{
			{ID: 1, Position: r3.Vector{X: 5}, Kind: shape.Cube, Faces: cube.Faces},
			{ID: 2, Position: r3.Vector{Z: 3}, Kind: shape.Cube, Completed: true, Progress: 1},
		},
	}

	term := NewTerminal(screen)
	term.Render(f)

	vp := term.Viewport()
	x, y, ok := vp.Project(5, 0)
	require.True(t, ok)
	mainc, _, _, _ := screen.GetContent(x, y+1)
	assert.Equal(t, '■', mainc)

	x, y, ok = vp.Project(0, 3)
	require.True(t, ok)
	mainc, _, _, _ = screen.GetContent(x, y+1)
	assert.Equal(t, completedGlyph, mainc)

	x, y, _ = vp.Project(0, 0)
	mainc, _, _, _ = screen.GetContent(x, y+1)
	assert.Equal(t, '+', mainc)

	mainc, _, _, _ = screen.GetContent(0, 0)
	assert.Equal(t, 'l', mainc)
}
