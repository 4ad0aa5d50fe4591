package main

import "github.com/urfave/cli/v2"

// loadApp declares the commands of the marketplace host.
func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "marketplace"
	s.app.Usage = "NFT marketplace and collection contracts on an in-process contract host"
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path of the toml config file",
			EnvVars: []string{"MARKETPLACE_CONFIG"},
		},
	}
	s.app.Before = s.loadConfig
	s.app.Commands = []*cli.Command{
		{
			Action:      s.startHost,
			Name:        "host",
			Usage:       "Start the contract host",
			Category:    "Host",
			Description: `Runs the contracts, the json-rpc server, the prometheus server and the scheduled message delivery.`,
		},
		{
			Action:   s.startMigrate,
			Name:     "migrate",
			Usage:    "Create the tables of the sql storage",
			Category: "Host",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Usage: "Run a single migrator instead of the auto migration",
				},
			},
		},
		{
			Action:   s.startCall,
			Name:     "call",
			Usage:    "Submit an operation to a running host",
			Category: "Client",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "caller", Required: true},
				&cli.StringFlag{Name: "target", Required: true},
				&cli.StringFlag{Name: "function", Required: true},
				&cli.Uint64Flag{Name: "coins"},
				&cli.StringFlag{Name: "params", Value: "{}", Usage: "JSON encoded params"},
				&cli.BoolFlag{Name: "read", Usage: "Run the call without committing it"},
			},
		},
		{
			Action:      s.startEvents,
			Name:        "events",
			Usage:       "Print the events published by the host",
			Category:    "Client",
			Description: `Subscribes to the kafka event topic and logs every contract event.`,
		},
	}
}
