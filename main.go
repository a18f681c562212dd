package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/robmorgan/fade/color"
	"github.com/robmorgan/fade/config"
	"github.com/robmorgan/fade/cuelist"
	"github.com/robmorgan/fade/logger"
	"k8s.io/utils/clock"
)

func main() {
	// The only argument is an optional show file.
	ctx := context.Background()
	if err := Run(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.GetProjectLogger().Fatalf("error running show. err='%v'", err)
	}
}

// Run plays a show, writing a swatch of every frame to out.
func Run(ctx context.Context, args []string, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// initialize the logger
	logger := logger.GetProjectLogger()

	logger.Info("Initializing config...")
	cfg := config.NewShowConfig()
	if len(args) > 0 {
		var err error
		if cfg, err = config.Load(args[0]); err != nil {
			return err
		}
	}

	logger.Info("Initializing cue list...")
	cl, err := cfg.BuildCueList()
	if err != nil {
		return err
	}

	// handle CTRL+C interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	defer signal.Stop(quit)
	go func() {
		select {
		case <-quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	player := cuelist.NewPlayer(clock.RealClock{}, cfg.FrameInterval())
	err = player.Play(ctx, cl, func(c color.Color) {
		fmt.Fprintf(out, "\r%s 0x%06x", c.TermString(), c.Pack())
	})
	fmt.Fprintln(out)

	if errors.Is(err, context.Canceled) {
		logger.Println("shutting down fade")
		return nil
	}
	return err
}
