package main

import (
	"fmt"
	"os"

	"github.com/adanyl0v/go-task-cards/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
