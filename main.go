package main

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v2"

	"github.com/maxwase/disasmd/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = "disasmd"
	app.Usage = "Multi-architecture disassembly service"
	app.Description = "Disassembles machine code for several architectures, as an HTTP service or a one-shot command"
	app.Commands = []*cli.Command{
		cmd.ServeCommand,
		cmd.DisassembleCommand,
	}
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}
