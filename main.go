package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rabidaudio/shuffle/display"
	"github.com/rabidaudio/shuffle/engine"
	"github.com/rabidaudio/shuffle/gpio"
	"github.com/rabidaudio/shuffle/library"
	"github.com/rabidaudio/shuffle/logger"
	"github.com/rabidaudio/shuffle/player"
	"github.com/rabidaudio/shuffle/waveform"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type config struct {
	Dir       string
	Image     string
	Partition int
	Plain     bool
	Rate      int
	LEDPin    int
	LogFile   string
	LogLevel  string
}

func (c config) validate() error {
	if c.Rate < 0 {
		return fmt.Errorf("invalid --rate %d", c.Rate)
	}
	if c.Partition < 0 {
		return fmt.Errorf("invalid --partition %d", c.Partition)
	}
	if c.LEDPin < 0 {
		return fmt.Errorf("invalid --led-pin %d", c.LEDPin)
	}
	if _, err := logger.ParseLevel(logger.LogLevel(c.LogLevel)); err != nil {
		return err
	}
	return nil
}

var cfg config

var rootCmd = &cobra.Command{
	Use:           "shuffle",
	Short:         "Plays every track in a folder once, in random order.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&cfg.Dir, "dir", ".", "directory to search for music files")
	f.StringVar(&cfg.Image, "image", "", "read music files from the root of a FAT32 disk image instead")
	f.IntVar(&cfg.Partition, "partition", 1, "partition of --image holding the filesystem, 0 for none")
	f.BoolVar(&cfg.Plain, "plain", false, "redraw with plain ANSI escapes instead of a full-screen UI")
	f.IntVar(&cfg.Rate, "rate", engine.DefaultSampleRate, "output sample rate in Hz")
	f.IntVar(&cfg.LEDPin, "led-pin", 0, "BCM number of a PWM pin to drive a loudness LED, 0 for none")
	f.StringVar(&cfg.LogFile, "log-file", "", "write JSON logs to this file")
	f.StringVar(&cfg.LogLevel, "log-level", string(logger.InfoLevel), "minimum log level")
}

func openSource(c config) (library.Source, error) {
	if c.Image != "" {
		return library.OpenImage(c.Image, c.Partition)
	}
	return library.Dir{Root: c.Dir}, nil
}

// run plays the library described by c. Status lines and the final
// summary go to out.
func run(ctx context.Context, c config, out io.Writer) error {
	if err := c.validate(); err != nil {
		return err
	}
	err := logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(c.LogLevel),
		OutputPath: c.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	fmt.Fprintf(out, "Searching for music files (%s)\n", strings.Join(waveform.Extensions, ", "))
	src, err := openSource(c)
	if err != nil {
		return err
	}
	defer src.Close()

	names, err := src.Scan()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(out, player.NoTracksMessage)
		return nil
	}
	logger.Info("found tracks", zap.Int("count", len(names)))

	eng, err := engine.Open(c.Rate)
	if err != nil {
		return err
	}
	defer eng.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := &player.Player{Source: src, Engine: eng}
	if c.LEDPin != 0 {
		led, err := gpio.OpenLED(c.LEDPin)
		if err != nil {
			return err
		}
		defer led.Close()
		p.Indicators = append(p.Indicators, led)
	}

	if c.Plain {
		p.Screen = display.NewPlain(out)
	} else {
		tb, err := display.OpenTermbox()
		if err != nil {
			return err
		}
		go func() {
			select {
			case <-tb.Quit():
				cancel()
			case <-ctx.Done():
			}
		}()
		p.Screen = tb
	}

	sum, err := p.Run(ctx, names)
	if cerr := p.Screen.Close(); cerr != nil {
		logger.Warn("closing screen", zap.Error(cerr))
	}
	report(out, sum)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func report(out io.Writer, sum player.Summary) {
	fmt.Fprintf(out, "Played %d of %d tracks\n", len(sum.Played), len(sum.Played)+len(sum.Skipped))
	for _, te := range sum.Skipped {
		fmt.Fprintf(out, "Warning: %v\n", te)
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
