package main

import (
	"github.td.teradata.com/sandbox/emu6502/internal/cmd"
	"github.td.teradata.com/sandbox/emu6502/internal/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
