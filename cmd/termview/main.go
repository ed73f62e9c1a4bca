// cmd/termview/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"go-cube-train/internal/app"
	"go-cube-train/internal/config"
	"go-cube-train/internal/logger"
	"go-cube-train/pkg/render"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "PRNG seed for random patterns and colors")
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()

	cfg, v, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	// stdout принадлежит экрану, логи только в файл
	v.Set("logger.stdout", false)
	if err := logger.Init("cubetrain-term", v); err != nil {
		logger.Fatal("failed to init logger", zap.Error(err))
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("failed to create screen", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("failed to init screen", zap.Error(err))
	}
	defer screen.Fini()

	animator, err := app.New(cfg, app.WithSeed(*seed))
	if err != nil {
		screen.Fini()
		logger.Fatal("failed to create animator", zap.Error(err))
	}
	defer animator.Close()

	if err := run(screen, animator, *fps); err != nil && err != context.Canceled {
		logger.Error("terminal loop failed", zap.Error(err))
	}
}

// run владеет аниматором: события экрана читаются в отдельной горутине
// и передаются сюда по каналу, тики и команды идут в одной горутине.
func run(screen tcell.Screen, animator *app.Animator, fps int) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	loop := app.NewLoop(app.NewFixedClock(), animator, render.NewTerminal(screen))
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
				if ev.Key() == tcell.KeyF9 {
					loop.SetPaused(!loop.Paused())
					continue
				}
				if cmd, ok := app.CommandForRune(ev.Rune()); ok {
					if err := animator.Apply(cmd); err != nil {
						logger.Warn("command rejected", zap.Error(err))
					}
				}
			}
		case <-ticker.C:
			if err := loop.Tick(); err != nil {
				return err
			}
		}
	}
}
