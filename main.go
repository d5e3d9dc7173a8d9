package main

import (
	"os"

	"github.com/quizarcade/quizarcade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
