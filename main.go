package main

import (
	"fmt"
	"os"

	"github.com/AnyUserName/fsdither/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fsdither: %v\n", err)
		os.Exit(1)
	}
}
