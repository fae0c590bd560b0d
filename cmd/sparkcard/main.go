package main

import (
	"log"
	"os"

	"github.com/sparkcard/sparkcard/internal/cli"
)

func main() {
	app := cli.NewApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
