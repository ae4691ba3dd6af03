/*
File    : sod/cmd/sod/main.go
Package   : main
*/

package main

import (
	"fmt"
	"os"

	"github.com/ricoveitch/sod/cmd/sod/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
