package main

import (
	"bufio"
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/tomz197/vectoroids/internal/audio"
	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/loop"
	"golang.org/x/term"
)

func main() {
	// Logs go to stderr so they never tear the frame on stdout.
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "vectoroids",
	})
	if level, err := log.ParseLevel(config.GetEnv("LOG_LEVEL", "warn")); err == nil {
		logger.SetLevel(level)
	}

	var player audio.Player = audio.Nop{}
	if config.GetEnvBool("ASTEROIDS_AUDIO", true) {
		sp, err := audio.NewSpeaker()
		if err != nil {
			logger.Fatal("failed to initialize audio (set ASTEROIDS_AUDIO=off to disable)", "err", err)
		}
		defer sp.Close()
		player = sp
	}

	seed, ok := config.GetEnvUint64("ASTEROIDS_SEED")
	if !ok {
		seed = rand.Uint64()
	}
	logger.Debug("starting", "seed", seed)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	runErr := loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Audio:  player,
		Logger: logger,
		Seed:   seed,
	})
	stop()
	_ = term.Restore(fd, oldState)

	if runErr != nil {
		logger.Fatal("game error", "err", runErr)
	}
}
