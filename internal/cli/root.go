// Package cli implements the cobra commands for lvltree.
//
// Each subcommand (traverse, layout, serve) lives in its own file. This file
// defines the root command, global flags and exit-code handling.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvltree/internal/config"
	"github.com/katalvlaran/lvltree/internal/ctxlog"
	"github.com/katalvlaran/lvltree/tree"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitGeneralError = 1
	ExitInvalidInput = 2
	ExitConfigError  = 3
)

// ExitError carries a process exit code along with the error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// Version is injected from main at build time.
var Version = "dev"

// globalFlags are bound to the root command's persistent flags.
type globalFlags struct {
	json       bool
	verbose    bool
	configPath string
}

// app is the state shared by every subcommand of one root command.
type app struct {
	flags globalFlags
	cfg   config.Config
}

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "lvltree",
		Short: "Build binary trees from level-order arrays and traverse them",
		Long: `lvltree reads a level-order array such as "1, 2, 3, null, 4", builds the
binary tree it describes and prints its level-order, preorder, inorder and
postorder traversals. It can also compute a drawing layout or serve the same
operations over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.flags.json, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&a.flags.configPath, "config", "c", "", "Path to a YAML or JSONC config file")

	rootCmd.AddCommand(newTraverseCommand(a))
	rootCmd.AddCommand(newLayoutCommand(a))
	rootCmd.AddCommand(newServeCommand(a))

	return rootCmd
}

// setup loads configuration and installs the logger in the command context.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}
	if a.flags.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg

	level, _ := ctxlog.ParseLevel(cfg.Log.Level) // validated by Load
	logger := ctxlog.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
	slog.SetDefault(logger)
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	return nil
}

// Execute runs rootCmd with args and returns the process exit code.
func Execute(rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	code := ExitGeneralError
	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		code = exitErr.Code
	case errors.Is(err, tree.ErrInvalidInput):
		code = ExitInvalidInput
	}
	printError(rootCmd.ErrOrStderr(), jsonRequested(rootCmd), err)

	return code
}

func jsonRequested(cmd *cobra.Command) bool {
	v, err := cmd.PersistentFlags().GetBool("json")
	return err == nil && v
}

// printError writes "Error: ..." or a JSON error object to w.
func printError(w io.Writer, asJSON bool, err error) {
	if asJSON {
		data, _ := json.MarshalIndent(map[string]string{"error": err.Error()}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// Main is the process entry point used by cmd/lvltree.
func Main() {
	os.Exit(Execute(NewRootCommand(), os.Args[1:]))
}
