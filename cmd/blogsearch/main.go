// Command blogsearch searches a static blog's article index.
package main

import (
	"os"

	"github.com/custodia-labs/blogsearch/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
