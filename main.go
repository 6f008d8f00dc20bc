package main

import (
	"fmt"
	"os"

	"ideatracker/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
