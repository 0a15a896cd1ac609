package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// NetworkFlags selects which network identity the process runs as.

func NetworkFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "network",
			Usage: "Network identity to load (main|regtest)",
			Value: "main",
		},
		cli.IntFlag{
			Name:  "port",
			Usage: "Expected P2P port; a mismatch with the network's default is reported",
		},
	}
}
