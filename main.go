package main

import (
	"os"

	"github.com/tiltwelve/tiltwelve/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
