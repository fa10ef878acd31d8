package main

import (
	cmd "github.com/pagestore/testkit/cmd/testkit-cli/modules"
)

func main() {
	cmd.Execute()
}
