// Command whatwgurl parses URLs and application/x-www-form-urlencoded query
// strings, printing the results as JSON, one object per line.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
