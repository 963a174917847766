package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/llmcopilot/obsctl/cmd"
)

func main() {
	// Pretty console logger by default; commands switch to JSON via --log-format
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cmd.Execute()
}
