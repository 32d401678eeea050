package main

import (
	"fmt"
	"os"

	"github.com/kobzarvs/mini/internal/app"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: mini <file>")
		os.Exit(2)
	}
	if err := app.New(args[0]).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "mini:", err)
		os.Exit(1)
	}
}
