package launcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/tsec-chaincfg/chaincfg"
	"github.com/rony4d/tsec-chaincfg/flags"
)

var errMissingHeight = errors.New("missing checkpoint height")

// launcher carries the state resolved in the Before hook so that every
// command sees the same config, logger and profile.
type launcher struct {
	opts []chaincfg.Option

	cfg    Config
	log    *logrus.Logger
	params *chaincfg.Params
}

// Launch parses args, resolves the network profile and runs the requested
// command.
func Launch(args []string) error {
	return newApp().Run(args)
}

func newApp(opts ...chaincfg.Option) *cli.App {
	l := &launcher{opts: opts}

	app := flags.NewApp()
	app.ErrWriter = os.Stderr
	app.Before = l.setup
	app.Action = l.run
	app.Commands = []cli.Command{
		{
			Name:   "dumpparams",
			Usage:  "Print the selected network profile as JSON",
			Action: l.dumpParams,
		},
		{
			Name:      "checkpoint",
			Usage:     "Print the pinned block hash at a height",
			ArgsUsage: "<height>",
			Action:    l.checkpoint,
		},
		{
			Name:   "verifygenesis",
			Usage:  "Rebuild the genesis block and check it against the pinned hash",
			Action: l.verifyGenesis,
		},
		{
			Name:   "serve",
			Usage:  "Start the read-only HTTP inspector",
			Action: l.serve,
		},
	}
	return app
}

func (l *launcher) setup(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Logging, cfg.Sentry.DSN, ctx.App.ErrWriter)
	if err != nil {
		return err
	}

	opts := append([]chaincfg.Option{}, l.opts...)
	opts = append(opts, chaincfg.WithLogger(log.WithField("node", cfg.Node.Name)))
	params, err := chaincfg.NewRegistry(opts...).Profile(cfg.Network.ID)
	if err != nil {
		return err
	}

	if cfg.Network.Port != 0 && cfg.Network.Port != int(params.Port()) {
		log.WithFields(logrus.Fields{
			"network":  params.ID(),
			"expected": cfg.Network.Port,
			"profile":  params.Port(),
		}).Warn("P2P port differs from the network default")
	}

	l.cfg, l.log, l.params = cfg, log, params
	return nil
}

// run is the default action: verify the network identity and report it.
func (l *launcher) run(ctx *cli.Context) error {
	if _, err := l.params.GenesisBlock(); err != nil {
		return err
	}
	l.log.WithFields(logrus.Fields{
		"network":     l.params.ID(),
		"genesis":     l.params.GenesisHash().String(),
		"fingerprint": l.params.Fingerprint().String(),
		"checkpoints": l.params.Checkpoints().Len(),
	}).Info("Network identity verified")

	if l.cfg.HTTP.Enabled {
		return l.serve(ctx)
	}
	return nil
}

func (l *launcher) dumpParams(ctx *cli.Context) error {
	out, err := json.MarshalIndent(newParamsView(l.params), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, string(out))
	return err
}

func (l *launcher) checkpoint(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "" {
		return errMissingHeight
	}
	height, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid height %q: %w", arg, err)
	}
	hash, ok := l.params.Checkpoint(idx.Block(height))
	if !ok {
		_, err = fmt.Fprintf(ctx.App.Writer, "no checkpoint at height %d\n", height)
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, hash.String())
	return err
}

func (l *launcher) verifyGenesis(ctx *cli.Context) error {
	if _, err := l.params.GenesisBlock(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(ctx.App.Writer, l.params.GenesisHash().String())
	return err
}

func (l *launcher) serve(ctx *cli.Context) error {
	if _, err := l.params.GenesisBlock(); err != nil {
		return err
	}
	sctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewInspector(l.params, l.log.WithField("network", l.params.ID())).Serve(sctx, l.cfg.HTTP.Listen())
}
