package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// NodeFlags holds knobs specific to the local node instance (identity and the
// read-only HTTP inspector).

func NodeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "identity",
			Usage: "Custom node name used in logs",
		},
		cli.BoolFlag{
			Name:  "http",
			Usage: "Serve the read-only parameter inspector after start-up checks",
		},
		cli.StringFlag{
			Name:  "http.addr",
			Usage: "Inspector listening interface",
			Value: "127.0.0.1",
		},
		cli.IntFlag{
			Name:  "http.port",
			Usage: "Inspector listening port",
			Value: 9480,
		},
	}
}
