package cmd

import (
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v2"

	"github.com/maxwase/disasmd/config"
	"github.com/maxwase/disasmd/server"
)

var (
	ConfigFlag = &cli.PathFlag{
		Name:     "config",
		Usage:    "Path to the service config file",
		Required: false,
	}
	ListenFlag = &cli.StringFlag{
		Name:     "listen",
		Usage:    "Listen address, overrides the config file",
		Required: false,
	}
	DebugFlag = &cli.BoolFlag{
		Name:     "debug",
		Usage:    "Enable verbose logging",
		Required: false,
		Value:    false,
	}
)

var ServeCommand = &cli.Command{
	Name:        "serve",
	Usage:       "Run the disassembly HTTP service",
	Description: "Serves one disassembly endpoint per supported architecture",
	Action:      Serve,
	Flags: []cli.Flag{
		ConfigFlag,
		ListenFlag,
		DebugFlag,
	},
}

func Serve(ctx *cli.Context) error {
	conf := config.Default()
	if path := ctx.Path(ConfigFlag.Name); path != "" {
		var err error
		if conf, err = config.Load(path); err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
	}

	if listen := ctx.String(ListenFlag.Name); listen != "" {
		conf.Listen = listen
	}
	if ctx.Bool(DebugFlag.Name) {
		conf.Debug = true
	}
	if conf.Debug {
		log.SetLevel(log.DebugLevel)
	}

	return server.New(conf).Start()
}
