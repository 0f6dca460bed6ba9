package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/srlehn/oledface/internal/config"
	"github.com/srlehn/oledface/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:              filepath.Base(os.Args[0]),
	Short:            "oledface animates eyes on a 128x64 monochrome panel",
	Long:             "oledface animates eyes on a 128x64 monochrome panel and previews them in the terminal",
	SilenceUsage:     true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	rootCmd.PersistentFlags().StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file (overrides config)`)
	rootCmd.PersistentFlags().StringVarP(&configFlag, `config`, `c`, ``, `config file (toml)`)
	rootCmd.PersistentFlags().StringVarP(&outputFlag, `output`, `o`, ``, `live output: term, sixel or fb (overrides config)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	debugFlag      bool
	silentFlag     bool
	logFileFlag    string
	configFlag     string
	outputFlag     string
	cpuProfileFlag string
	cpuProfilefunc func(profileFile string) func()
)

// session is what a subcommand works with.
type session struct {
	ctx    context.Context
	cfg    config.Config
	logger *slog.Logger
}

type sessionFunc func(s *session) error

func run(fn sessionFunc) {
	var err error
	if fn == nil {
		err = errors.NilParam(fn)
	}
	var exitCode int
	var closeLog func() error
	defer func() {
		// catch panics to print the stack
		if r := recover(); r != nil {
			exitCode = 1
			if !silentFlag {
				if stackFramer, ok := r.(interface{ ErrorStack() string }); ok {
					fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
				} else {
					debug.PrintStack()
				}
			}
		}
		if closeLog != nil {
			_ = closeLog()
		}
		os.Exit(exitCode)
	}()
	if len(cpuProfileFlag) > 0 && cpuProfilefunc != nil {
		if stop := cpuProfilefunc(cpuProfileFlag); stop != nil {
			defer stop()
		}
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	s := &session{ctx: ctx}
	if err == nil {
		s.cfg, err = config.Load(configFlag)
	}
	if err == nil && len(outputFlag) > 0 {
		s.cfg.Preview.Output = outputFlag
		err = s.cfg.Validate()
	}
	if err == nil {
		if len(logFileFlag) > 0 {
			s.cfg.Log.File = logFileFlag
		}
		s.logger, closeLog, err = newLogger(s.cfg.Log)
	}
	if err == nil {
		err = fn(s)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		if s.logger != nil {
			s.logger.Error(err.Error())
		}
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, "\n"+err.Error())
			}
		}
	}
}

// newLogger logs JSON to the configured file. Without a file logging is off.
func newLogger(c config.LogConfig) (*slog.Logger, func() error, error) {
	if len(c.File) == 0 {
		return nil, nil, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, nil, errors.WrapPrefix(err, `log level`, 0)
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.New(err)
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl, AddSource: true})
	return slog.New(h), f.Close, nil
}
