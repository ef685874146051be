package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/adrianmusante/mws-tools/internal/convert"
	"github.com/adrianmusante/mws-tools/internal/fs"
	"github.com/adrianmusante/mws-tools/internal/logging"
	"github.com/spf13/cobra"
)

// version and commit are set at build time via -ldflags.
// If left empty, they show as "dev".
var version = ""
var commit = ""

func versionString() string {
	v := version
	if v == "" {
		v = "dev"
	}
	if commit != "" {
		return v + " (" + commit + ")"
	}
	return v
}

// inputArg requires exactly one input path. A missing path is reported as a
// file access failure like any other unreadable input.
func inputArg(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &fs.FileAccessError{Err: fs.ErrNoInputPath}
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func runConvert(cmd *cobra.Command, inputPath string, mode convert.Mode) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	res, err := convert.Run(ctx, convert.Options{
		InputPath: inputPath,
		Output:    cmd.OutOrStdout(),
		Mode:      mode,
	})
	if err != nil {
		return err
	}
	log.Info("converted", "path", inputPath, "mode", mode, "tokens", res.Tokens, "lines", res.Lines)
	return nil
}

func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "mws2cols [flags] <input-file>",
		Short:         "Convert MWS multi-parametric sweep exports to comma-separated columns",
		Args:          inputArg,
		Version:       versionString(),
		SilenceErrors: true,
		SilenceUsage:  true,
		// "completion" would shadow an input file of that name.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Environment settings only tune logging: bad values are logged, not returned.
			dotenvErr := loadDotEnv()
			envErr := resolveBoolFlagFromEnv(cmd, flagVerbose, envVerbose)

			logger := logging.New(cmd.ErrOrStderr(), logging.Level(verbose))
			slog.SetDefault(logger)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

			if dotenvErr != nil {
				logger.Warn("ignoring unreadable .env file", "err", dotenvErr)
			}
			if envErr != nil {
				logger.Warn("ignoring invalid environment setting", "err", envErr)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], convert.ModeColumns)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, flagVerbose, flagVerboseShorthand, false, "Enable verbose (debug) logging on stderr")
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newRQCmd())
	return rootCmd
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		// Cobra errors are silenced; this is the single diagnostic line.
		_, _ = io.WriteString(stderr, "mws2cols: "+err.Error()+"\n")
		return 1
	}
	return 0
}

func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
