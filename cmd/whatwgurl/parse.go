package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/joeycumines/go-utilpkg/jsonenc"
	whatwgurl "github.com/joeycumines/go-whatwgurl"
	"github.com/spf13/cobra"
)

func newParseCommand(root *rootOptions) *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "parse [url...]",
		Short: "Parse URLs, reading them from stdin (one per line) if none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := root.newParser(cmd)
			if err != nil {
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				inputs, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			var failed int
			out := cmd.OutOrStdout()
			for _, input := range inputs {
				var u *whatwgurl.URL
				if cmd.Flags().Changed("base") {
					u, err = parser.ParseWithBase(input, base)
				} else {
					u, err = parser.Parse(input)
				}
				var b []byte
				if err != nil {
					failed++
					b = appendParseFailure(b, input, err)
				} else {
					b = appendURL(b, u)
				}
				b = append(b, '\n')
				if _, err := out.Write(b); err != nil {
					return err
				}
			}

			if failed != 0 {
				return fmt.Errorf("%d of %d inputs failed to parse", failed, len(inputs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "base URL to resolve inputs against")

	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		// the parser trims its own C0 control or space, other spaces are significant
		if strings.TrimFunc(line, isC0ControlOrSpace) != `` {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func isC0ControlOrSpace(r rune) bool { return r <= ' ' }

func appendURL(b []byte, u *whatwgurl.URL) []byte {
	b = append(b, '{')
	for i, field := range [...]struct {
		key   string
		value string
	}{
		{`href`, u.Href()},
		{`origin`, u.Origin()},
		{`protocol`, u.Protocol()},
		{`username`, u.Username()},
		{`password`, u.Password()},
		{`host`, u.Host()},
		{`hostname`, u.Hostname()},
		{`port`, u.Port()},
		{`pathname`, u.Pathname()},
		{`search`, u.Search()},
		{`hash`, u.Hash()},
	} {
		if i != 0 {
			b = append(b, ',')
		}
		b = jsonenc.AppendString(b, field.key)
		b = append(b, ':')
		b = jsonenc.AppendString(b, field.value)
	}
	b = append(b, `,"searchParams":`...)
	params, _ := u.SearchParams().MarshalJSON()
	b = append(b, params...)
	return append(b, '}')
}

func appendParseFailure(b []byte, input string, err error) []byte {
	b = append(b, `{"input":`...)
	b = jsonenc.AppendString(b, input)
	b = append(b, `,"error":`...)
	b = jsonenc.AppendString(b, err.Error())
	return append(b, '}')
}
