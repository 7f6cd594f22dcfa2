package main

import (
	"fmt"
	"os"
	"strings"

	"transfuse/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd("transfuse")
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
