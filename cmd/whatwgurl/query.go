package main

import (
	whatwgurl "github.com/joeycumines/go-whatwgurl"
	"github.com/spf13/cobra"
)

func newQueryCommand() *cobra.Command {
	var sort bool

	cmd := &cobra.Command{
		Use:   "query <query>",
		Short: "Parse an application/x-www-form-urlencoded string, printing the pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := whatwgurl.NewSearchParams(args[0])
			if sort {
				params.Sort()
			}
			b, err := params.MarshalJSON()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(b, '\n'))
			return err
		},
	}

	cmd.Flags().BoolVar(&sort, "sort", false, "sort the pairs by name")

	return cmd
}
