package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/retroshade/chip8/chip8"
)

/// RefreshRate is how many frames are rendered per second. The delay
/// timer is decremented once per frame.
///
const RefreshRate = 60

var (
	/// The CHIP-8 virtual machine.
	///
	VM *chip8.VM

	/// The SDL window and renderer.
	///
	Window   *sdl.Window
	Renderer *sdl.Renderer

	/// Logger for host diagnostics.
	///
	Logger *log.Logger

	/// True if pausing emulation (single stepping).
	///
	Paused bool

	/// Scale is the window pixel size of one CHIP-8 pixel.
	///
	Scale int

	/// TraceDepth is how many executed instructions are kept for
	/// fault diagnostics, 0 to disable tracing.
	///
	TraceDepth int
)

type options struct {
	rom    string
	scale  int
	speed  int
	paused bool
	trace  bool
	debug  bool
	quiet  bool
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := readArguments()

	Logger = createLogger(opts.debug, opts.quiet)
	Paused = opts.paused
	Scale = opts.scale

	if opts.trace {
		TraceDepth = 16
	}

	// pick a ROM with the file dialog if none was given
	rom := opts.rom
	if rom == "" {
		rom = RomDialog()
	}

	if err := Boot(rom); err != nil {
		Logger.Error("Failed to load ROM",
			log.String("file", rom),
			log.String("error", err.Error()))
		os.Exit(1)
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		Logger.Error("Failed to initialize SDL", log.String("error", err.Error()))
		os.Exit(1)
	}
	defer sdl.Quit()

	var err error

	// create the main window and renderer
	w := int32(chip8.DisplayWidth * Scale)
	h := int32(chip8.DisplayHeight * Scale)
	if Window, Renderer, err = sdl.CreateWindowAndRenderer(w, h, sdl.WINDOW_SHOWN); err != nil {
		Logger.Error("Failed to create window", log.String("error", err.Error()))
		os.Exit(1)
	}
	defer Window.Destroy()
	defer Renderer.Destroy()

	Window.SetTitle("CHIP-8")

	// execute small instruction batches at a finer cadence than the
	// refresh rate so input stays responsive
	const clockTick = 2 * time.Millisecond

	batch := opts.speed * int(clockTick) / int(time.Second)
	if batch < 1 {
		batch = 1
	}

	// processor speed and refresh cadence
	clock := time.NewTicker(clockTick)
	video := time.NewTicker(time.Second / RefreshRate)
	defer clock.Stop()
	defer video.Stop()

	// loop until window closed or user quit
	for ProcessEvents() {
		select {
		case <-video.C:
			VM.Tick()
			Refresh()
		case <-clock.C:
			if !Paused {
				if err := VM.Run(batch); err != nil {
					Fault(err)
					os.Exit(1)
				}
			}
		}
	}
}

func readArguments() options {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options{}

	flags.IntVar(&opts.scale, "scale", 10, "window size of one CHIP-8 pixel")
	flags.IntVar(&opts.speed, "speed", 700, "instructions executed per second")
	flags.BoolVar(&opts.paused, "paused", false, "start emulation paused")
	flags.BoolVar(&opts.trace, "trace", false, "record executed instructions for fault diagnostics")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.quiet, "quiet", false, "only log errors")

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	opts.rom = flags.Arg(0)

	return opts
}

func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()

	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}

	return log.NewWithConfig(cfg)
}

/// Fault reports a fatal emulation error along with the instruction
/// trace leading up to it.
///
func Fault(err error) {
	Logger.Error("Emulation fault", log.String("error", err.Error()))

	if h := VM.Trace(); h != nil {
		for _, line := range h.Tail() {
			Logger.Error("Trace", log.String("instruction", line))
		}
	}
}
