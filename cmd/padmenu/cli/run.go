package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/pawndev/padmenu/pkg/padmenu"
	"github.com/pawndev/padmenu/pkg/padmenu/i18n"
	"github.com/pawndev/padmenu/pkg/padmenu/menufile"
	"github.com/pawndev/padmenu/pkg/padmenu/term"
	"github.com/spf13/cobra"
)

const (
	backendSDL   = "sdl"
	backendTerm  = "term"
	backendEvdev = "evdev"

	defaultTermWidth  = 40
	defaultTermHeight = 12
)

type runOptions struct {
	backend     string
	device      string
	locale      string
	messages    []string
	mappingFile string
	smooth      bool
	logLevel    string
	logFile     string
	windowTitle string
	nextUI      bool
	cannoli     bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Show the root menu of a menu file and print the chosen value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenuFile(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.backend, "backend", "b", backendSDL, "display and input backend: sdl|term|evdev")
	flags.StringVar(&opts.device, "device", "/dev/input/event0", "input device read by the evdev backend")
	flags.StringVarP(&opts.locale, "locale", "l", "", "language used to resolve labels, for example es")
	flags.StringArrayVarP(&opts.messages, "messages", "m", nil, "go-i18n message file (TOML or JSON), repeatable")
	flags.StringVar(&opts.mappingFile, "input-mapping", "", "JSON input mapping file")
	flags.BoolVar(&opts.smooth, "smooth", false, "scroll pages smoothly")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	flags.StringVar(&opts.logFile, "log-file", "", "log file name under logs/")
	flags.StringVar(&opts.windowTitle, "title", "padmenu", "window title")
	flags.BoolVar(&opts.nextUI, "nextui", false, "use the NextUI theme")
	flags.BoolVar(&opts.cannoli, "cannoli", false, "use the Cannoli theme")
	return cmd
}

func runMenuFile(cmd *cobra.Command, opts *runOptions, path string) error {
	file, err := menufile.Load(path)
	if err != nil {
		return err
	}

	if err := i18n.InitI18N(opts.messages); err != nil {
		return fmt.Errorf("loading messages: %w", err)
	}
	if opts.locale != "" {
		if err := i18n.SetWithCode(opts.locale); err != nil {
			return fmt.Errorf("locale %q: %w", opts.locale, err)
		}
	}

	if opts.logFile != "" {
		padmenu.SetLogFilename(opts.logFile)
	}

	var engine *padmenu.Engine
	switch opts.backend {
	case backendTerm:
		padmenu.SetLogToStdout(false)
		padmenu.SetRawLogLevel(opts.logLevel)

		input, err := term.NewInput(os.Stdin)
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		defer input.Close()

		width, height := term.Size(os.Stdout, defaultTermWidth, defaultTermHeight)
		surface := term.NewSurface(cmd.OutOrStdout(), width, height, input.Raw())
		engine = padmenu.NewEngine(padmenu.EngineOptions{
			Surface: surface,
			Input:   input,
			MenuBar: term.NewMenuBar(surface),
			Labels:  padmenu.DefaultLabels(),
			Abort:   input,
			Logger:  padmenu.GetInternalLogger(),
		})
	case backendSDL, backendEvdev:
		padmenu.SetRawLogLevel(opts.logLevel)

		options := padmenu.Options{
			WindowTitle:      opts.windowTitle,
			IsNextUI:         opts.nextUI,
			IsCannoli:        opts.cannoli,
			InputMappingFile: opts.mappingFile,
			SmoothScroll:     opts.smooth,
		}
		if opts.backend == backendEvdev {
			options.EvdevDevicePath = opts.device
		}
		if err := padmenu.Init(options); err != nil {
			return err
		}
		defer padmenu.Close()
		engine = padmenu.DefaultEngine()
	default:
		return fmt.Errorf("unknown backend %q", opts.backend)
	}

	logger := padmenu.GetLogger()
	set, err := file.Build(engine, builtinHooks(logger, engine))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result, err := engine.Run(ctx, set.Root())
	switch {
	case errors.Is(err, padmenu.ErrCancelled), errors.Is(err, term.ErrInterrupted), errors.Is(err, context.Canceled):
		logger.Info("Menu closed without a choice", "reason", err)
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\r\n%v\r\n", result)
	return nil
}
