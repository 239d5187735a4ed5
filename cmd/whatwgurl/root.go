package main

import (
	whatwgurl "github.com/joeycumines/go-whatwgurl"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	debug bool
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:          "whatwgurl",
		Short:        "Parse URLs per the WHATWG URL Standard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log validation errors to stderr")

	cmd.AddCommand(
		newParseCommand(&opts),
		newQueryCommand(),
	)

	return cmd
}

// newParser configures a parser, which logs to the command's stderr, if
// debug is enabled.
func (x *rootOptions) newParser(cmd *cobra.Command) (*whatwgurl.Parser, error) {
	if !x.debug {
		return whatwgurl.NewParser()
	}
	logger := stumpy.L.New(
		stumpy.L.WithStumpy(
			stumpy.WithWriter(cmd.ErrOrStderr()),
			stumpy.WithTimeField(``),
		),
		stumpy.L.WithLevel(logiface.LevelDebug),
	)
	return whatwgurl.NewParser(whatwgurl.WithLogger(logger.Logger()))
}
