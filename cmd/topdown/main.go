// cmd/topdown/main.go
package main

import (
	"errors"
	"flag"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"go-cube-train/internal/app"
	"go-cube-train/internal/config"
	"go-cube-train/internal/logger"
	"go-cube-train/pkg/render"
)

var errQuit = errors.New("quit")

var keyCommands = map[ebiten.Key]app.Command{
	ebiten.KeyS:     app.CmdNextShape,
	ebiten.KeyP:     app.CmdNextPattern,
	ebiten.KeyE:     app.CmdNextRollEasing,
	ebiten.KeyM:     app.CmdNextMoveEasing,
	ebiten.KeySpace: app.CmdToggleSpawning,
	ebiten.KeyD:     app.CmdToggleDirection,
	ebiten.KeyC:     app.CmdClear,
}

// TopDownGame - вид сверху на ebiten; ebiten сам вызывает Update 60 раз в секунду.
type TopDownGame struct {
	loop     *app.Loop
	animator *app.Animator
	renderer *render.TopDown
}

func (g *TopDownGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.loop.SetPaused(!g.loop.Paused())
	}
	for key, cmd := range keyCommands {
		if inpututil.IsKeyJustPressed(key) {
			if err := g.animator.Apply(cmd); err != nil {
				logger.Warn("command rejected", zap.Error(err))
			}
		}
	}
	return g.loop.Tick()
}

func (g *TopDownGame) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

func (g *TopDownGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "PRNG seed for random patterns and colors")
	flag.Parse()

	cfg, v, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if err := logger.Init("cubetrain-topdown", v); err != nil {
		logger.Fatal("failed to init logger", zap.Error(err))
	}
	defer logger.Sync()

	animator, err := app.New(cfg, app.WithSeed(*seed))
	if err != nil {
		logger.Fatal("failed to create animator", zap.Error(err))
	}
	defer animator.Close()

	renderer := render.NewTopDown(config.ScreenWidth, config.ScreenHeight)
	g := &TopDownGame{
		loop:     app.NewLoop(app.NewFixedClock(), animator, renderer),
		animator: animator,
		renderer: renderer,
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Cube Train: top view")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
