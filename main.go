package main

import (
	"github.com/fastboardai/linkgraph/cmd"

	// Register payload formats
	_ "github.com/fastboardai/linkgraph/format/voyager"
	_ "github.com/fastboardai/linkgraph/format/voyagersearch"
)

func main() {
	cmd.Execute()
}
