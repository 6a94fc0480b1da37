package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/chabrovs/resub/pkg/engine"
	"github.com/chabrovs/resub/pkg/report"
)

// errIncompleteBatch signals that the run finished but some files failed.
var errIncompleteBatch = errors.New("completed with file errors")

// rootFlags holds the parsed command line flags for one invocation.
type rootFlags struct {
	extensions []string
	ignore     []string
	force      bool
	verbose    bool
	debug      bool
}

// newRootCmd builds the resub command. resub takes a directory, a search
// regex and a replacement template, and rewrites every matching file under
// the directory.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "resub [flags] <directory> <pattern> <replacement>",
		Short: "Replace regex patterns across the files of a directory tree",
		Long: `resub recursively visits the files under a directory, applies a regular
expression substitution to their contents, and rewrites the files that
changed. The replacement template may reference capture groups as \1 or $1.

Examples:
  resub /home/user/myproject 'foo(\d+)' 'bar\1' -e html -e js
  resub -v --force /srv/www '<h\d>(.*?)</h\d>' '<h1>$1</h1>' -e html
  resub /home/user/myproject 'Hello World' 'Hello Script !' --ignore 'vendor/**'`,
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		Version:      formatVersion(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(flags.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req := engine.Request{
				Root:        args[0],
				Pattern:     args[1],
				Replacement: args[2],
				Extensions:  flags.extensions,
				IgnoreGlobs: flags.ignore,
				Force:       flags.force,
				Verbose:     flags.verbose,
			}

			reporter := report.New(cmd.OutOrStdout(), req.Verbose, *zerolog.Ctx(ctx))

			eng, err := engine.New(req, reporter)
			if err != nil {
				return err
			}

			summary, err := eng.Run(ctx)
			if err != nil {
				return err
			}

			if summary.HasErrors() {
				cmd.SilenceErrors = true
				return errIncompleteBatch
			}
			return nil
		},
	}

	cmd.SetVersionTemplate("{{.Version}}")

	cmd.Flags().StringSliceVarP(&flags.extensions, "extensions", "e", nil,
		"only visit files with these extensions, without the dot (default: all files)")
	cmd.Flags().StringArrayVar(&flags.ignore, "ignore", nil,
		"skip paths matching these glob patterns, relative to the root")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false,
		"rewrite every visited file even when nothing matched")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"print one line per visited file")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "d", false,
		"enable debug logging")
	cmd.Flags().BoolP("version", "V", false,
		"print version information")

	return cmd
}
