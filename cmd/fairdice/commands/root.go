package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fairdice/internal/app"
	"fairdice/internal/dice"
	"fairdice/internal/domain"
	"fairdice/internal/terminal"
)

const usageExample = "fairdice 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3"

// rootOptions carries flag values and the state built in PersistentPreRunE.
type rootOptions struct {
	strategy   string
	maxRetries int
	logLevel   string
	diceFile   string

	cfg    app.Config
	logger zerolog.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// Execute runs the CLI against the process's standard streams.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree over the given streams.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	o := &rootOptions{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "fairdice [flags] <die> <die> <die> [die...]",
		Short: "Non-transitive dice game with provably fair rolls",
		Example: "  " + usageExample + "\n" +
			"  fairdice --strategy random -- -1,0,1 1,1,1 0,0,3",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.play(cmd.Context(), args)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&o.strategy, "strategy", "", "computer strategy: random or counter (env FAIRDICE_STRATEGY)")
	pf.IntVar(&o.maxRetries, "max-retries", 0, "invalid answers tolerated per prompt, 0 = unlimited (env FAIRDICE_MAX_RETRIES)")
	pf.StringVar(&o.logLevel, "log-level", "", "log level written to stderr (env FAIRDICE_LOG_LEVEL)")
	pf.StringVar(&o.diceFile, "dice-file", "", "YAML file listing dice (env FAIRDICE_DICE_FILE)")

	root.AddCommand(tableCmd(o), verifyCmd())
	return root
}

// hint adds a usage example to configuration errors.
func hint(err error) error {
	if errors.Is(err, domain.ErrConfiguration) {
		return fmt.Errorf("%w\nexample: %s", err, usageExample)
	}
	return err
}

// load reads Config from the environment and applies flags that were set
// explicitly on the command line.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = o.strategy
	}
	if flags.Changed("max-retries") {
		cfg.MaxRetries = o.maxRetries
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("dice-file") {
		cfg.DiceFile = o.diceFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := app.NewLogger(o.errOut, cfg.LogLevel)
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.logger = logger
	return nil
}

// loadDice merges dice from the configured file with dice given as args.
func (o *rootOptions) loadDice(args []string) ([]domain.Die, error) {
	specs := args
	if o.cfg.DiceFile != "" {
		fromFile, err := dice.LoadFile(o.cfg.DiceFile)
		if err != nil {
			return nil, err
		}
		specs = append(fromFile, args...)
	}
	return dice.Parse(specs)
}

func (o *rootOptions) play(ctx context.Context, args []string) error {
	ds, err := o.loadDice(args)
	if err != nil {
		return hint(err)
	}
	w, err := app.NewWire(o.cfg, ds, o.logger, nil)
	if err != nil {
		return err
	}

	sess := terminal.Open(o.in, o.out)
	defer sess.Close()

	_, err = w.Game.Play(ctx, sess)
	return err
}
