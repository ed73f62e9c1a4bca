// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go.uber.org/zap"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-cube-train/internal/app"
	"go-cube-train/internal/config"
	"go-cube-train/internal/event"
	"go-cube-train/internal/logger"
	"go-cube-train/internal/metrics"
	"go-cube-train/internal/state"
)

func main() {
	// --- Флаги командной строки ---
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "PRNG seed for random patterns and colors")
	measured := flag.Bool("measured", false, "advance by wall time instead of a fixed 0.016s step")
	flag.Parse()

	cfg, v, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if err := logger.Init("cubetrain", v); err != nil {
		logger.Fatal("failed to init logger", zap.Error(err))
	}
	defer logger.Sync()

	dispatcher := event.NewDispatcher()
	collector := serveDebug(v.GetString("debug.addr"))
	if collector != nil {
		dispatcher.SubscribeAll(collector)
	}

	animator, err := app.New(cfg, app.WithSeed(*seed), app.WithDispatcher(dispatcher))
	if err != nil {
		logger.Fatal("failed to create animator", zap.Error(err))
	}

	var clock app.Clock = app.NewFixedClock()
	if *measured {
		clock = app.NewMeasuredClock()
	}

	// --- Инициализация Raylib ---
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Cube Train")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // Esc ставит на паузу, окно закрывается крестиком

	font := rl.GetFontDefault()

	// --- Настройка 3D камеры ---
	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective
	camera.Fovy = config.CameraFovyDefault

	sm := state.NewStateMachine()
	sm.SetState(state.NewAnimationState(sm, animator, clock, font))

	lastUpdateTime := time.Now()

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdateTime = now

		sm.Current().SetCamera(&camera)
		sm.Update(deltaTime)

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(config.BackgroundColor)

		rl.BeginMode3D(camera)
		sm.Draw()
		rl.EndMode3D()

		sm.DrawUI()
		rl.DrawFPS(config.ScreenWidth-90, 10)

		rl.EndDrawing()
	}

	sm.Current().Cleanup()
	logger.Info("shutdown", zap.Int("live_shapes", animator.Tracker().LiveMaterials()))
}

// serveDebug поднимает pprof и /metrics. Пустой адрес отключает сервер.
func serveDebug(addr string) *metrics.Collector {
	if addr == "" {
		return nil
	}
	collector, handler, err := metrics.NewHandler()
	if err != nil {
		logger.Error("metrics disabled", zap.Error(err))
		return nil
	}
	http.Handle("/metrics", handler)
	go func() {
		logger.Info("debug server", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Warn("debug server stopped", zap.Error(err))
		}
	}()
	return collector
}
