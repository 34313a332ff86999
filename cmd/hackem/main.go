// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "hackem"
	app.Description = "Hack computer simulator and debugger"
	app.Usage = "hackem [options] <command> [arguments]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "verbose, v",
			Usage:  "Verbose logging of CPU, loader and debugger actions",
			EnvVar: "HACKEM_VERBOSE",
		},
		cli.StringFlag{
			Name:   "log-file",
			Usage:  "Write logs to this file instead of stderr, rotated at 10MB",
			EnvVar: "HACKEM_LOG_FILE",
		},
	}
	app.Before = setupLogging

	pdbFlag := cli.StringFlag{
		Name:   "pdb",
		Usage:  "Path to the program database (JSON, or YAML for .yaml/.yml)",
		EnvVar: "HACKEM_PDB",
	}

	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "Run a program until it halts, loops, or reaches a breakpoint",
			ArgsUsage: "<code file>",
			Flags: []cli.Flag{
				pdbFlag,
				cli.StringSliceFlag{
					Name:  "break, b",
					Usage: "Breakpoint address, symbol, or =expression (repeatable)",
				},
				cli.DurationFlag{
					Name:   "budget",
					Usage:  "Time slice of each run",
					Value:  50 * time.Millisecond,
					EnvVar: "HACKEM_BUDGET",
				},
				cli.IntFlag{
					Name:  "max-slices",
					Usage: "Stop after this many time slices (0 = unbounded)",
				},
				cli.StringFlag{
					Name:  "keys",
					Usage: "File typed into the keyboard, one byte per time slice",
				},
				cli.BoolFlag{
					Name:  "screen",
					Usage: "Dump the screen when the run stops",
				},
				cli.StringSliceFlag{
					Name:  "eval, e",
					Usage: "Expression to print when the run stops (repeatable)",
				},
			},
			Action: runProgram,
		},
		{
			Name:      "dis",
			Usage:     "Disassemble ROM",
			ArgsUsage: "<code file>",
			Flags: []cli.Flag{
				pdbFlag,
				cli.StringFlag{
					Name:  "start",
					Usage: "First address, symbol, or =expression",
					Value: "0",
				},
				cli.IntFlag{
					Name:  "count, n",
					Usage: "Number of instructions",
					Value: 16,
				},
				cli.BoolFlag{
					Name:  "symbols",
					Usage: "List symbols instead of instructions",
				},
				cli.StringFlag{
					Name:  "match",
					Usage: "Only list symbols containing this text",
				},
			},
			Action: disassemble,
		},
		{
			Name:      "eval",
			Usage:     "Evaluate expressions against a loaded program",
			ArgsUsage: "<expression>...",
			Flags: []cli.Flag{
				pdbFlag,
				cli.StringFlag{
					Name:  "code",
					Usage: "Code file to load before evaluating",
				},
			},
			Action: evaluate,
		},
		{
			Name:      "convert",
			Usage:     "Convert a code file to hackem format",
			ArgsUsage: "<input> [<output>]",
			Action:    convert,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("hackem failed", "error", err)
		os.Exit(1)
	}
}

func setupLogging(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	if path := c.String("log-file"); path != "" {
		w = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}
