package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	dterror "github.com/msto63/datetool/foundation/core/error"
	"github.com/msto63/datetool/foundation/utils/timex"
	"github.com/msto63/datetool/internal/difference"
	"github.com/msto63/datetool/internal/report"
	"github.com/msto63/datetool/internal/tui/calculator"
	"github.com/msto63/datetool/pkg/core/config"
	"github.com/msto63/datetool/pkg/core/logging"
)

const (
	dateTimeDescription = "Argument must be an ISO date time string with optional time E.g. 1997-07-16T19:20:30+01:00"
	dateFormatMessage   = "Your dates are formatted incorrectly.  Please use ISO date format"
)

// Options configures one command tree. Zero values use the process
// defaults.
type Options struct {
	Out io.Writer
	Err io.Writer

	// Location overrides the configured time zone for dates without an
	// offset
	Location *time.Location

	// RunTUI starts the interactive calculator (default: calculator.Run)
	RunTUI func(calculator.Config) error
}

func (o Options) withDefaults() Options {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.RunTUI == nil {
		o.RunTUI = calculator.Run
	}
	return o
}

// globalOptions are the persistent flags shared by all commands
type globalOptions struct {
	configPath string
	verbose    bool
}

// rootOptions are the flags of one difference calculation
type rootOptions struct {
	startDate string
	endDate   string

	daysBetween     bool
	weekdaysBetween bool
	weeksBetween    bool

	unit   string
	output string
}

// NewRootCommand builds the datetool command tree
func NewRootCommand(opts Options) *cobra.Command {
	opts = opts.withDefaults()
	global := &globalOptions{}
	o := &rootOptions{}

	root := &cobra.Command{
		Use:   "datetool",
		Short: "Calculates the difference between two dates",
		Long: `DateTool compares two ISO-8601 dates and prints the number of
days, weekdays (Monday to Friday) and complete weeks between them.

Results are negative when the end date precedes the start date.`,
		Example: `  datetool --startDate 2000-01-01 --endDate 2000-01-05 --daysBetween
  datetool -x 2000-01-03 -y 2000-01-10 -a -b -c --unit hours
  datetool -x 2000-01-01T10:00+02:00 -y 2001-W01-1 -c --output json`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDifference(cmd, opts, global, o)
		},
	}
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&global.configPath, "config", "", "Config file (default: $DATETOOL_CONFIG or ./configs/datetool.toml)")
	pf.BoolVarP(&global.verbose, "verbose", "v", false, "Debug logging to stderr")

	f := root.Flags()
	f.StringVarP(&o.startDate, "startDate", "x", "", "The start date to search from. "+dateTimeDescription)
	f.StringVarP(&o.endDate, "endDate", "y", "", "The end date to search to. "+dateTimeDescription)
	f.BoolVarP(&o.daysBetween, "daysBetween", "a", false, "Calculates the number of days between the two dates")
	f.BoolVarP(&o.weekdaysBetween, "weekdaysBetween", "b", false, "Calculates the number of weekdays between the two dates")
	f.BoolVarP(&o.weeksBetween, "weeksBetween", "c", false, "Calculates the number of complete weeks between the two dates")
	f.StringVarP(&o.unit, "unit", "u", "", "Result unit: default, seconds, minutes, hours, days, weeks or years")
	f.StringVarP(&o.output, "output", "o", "", "Output format: text, json, yaml or pretty")
	_ = root.MarkFlagRequired("startDate")
	_ = root.MarkFlagRequired("endDate")

	root.AddCommand(newVersionCommand(), newTUICommand(opts, global))
	return root
}

// Execute runs the command tree with the process arguments
func Execute() error {
	return Run(Options{}, os.Args[1:])
}

// Run executes the command tree with args and reports any error on
// opts.Out. The returned error has already been printed.
func Run(opts Options, args []string) error {
	opts = opts.withDefaults()
	root := NewRootCommand(opts)
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err != nil {
		reportError(opts.Out, cmd, err)
	}
	return err
}

// reportError prints err the way its code asks for: date errors get the
// grammar, configuration errors the message alone and everything else the
// message followed by usage
func reportError(out io.Writer, cmd *cobra.Command, err error) {
	switch dterror.GetCode(err) {
	case dterror.CodeInvalidDateFormat:
		fmt.Fprintln(out, dateFormatMessage)
		fmt.Fprint(out, timex.ISOGrammar+"\n")
	case dterror.CodeMissingConfig, dterror.CodeInvalidConfig,
		dterror.CodeValidationFailed, dterror.CodeEnvironmentError:
		fmt.Fprintln(out, err.Error())
	default:
		fmt.Fprintln(out, err.Error())
		fmt.Fprint(out, cmd.UsageString())
	}
}

// loadConfig reads the file named by --config, or searches the default
// locations
func loadConfig(global *globalOptions) (*config.Config, error) {
	if global.configPath != "" {
		return config.Load(global.configPath)
	}
	return config.LoadFromEnv()
}

func newLogger(opts Options, global *globalOptions, cfg *config.Config) *logging.Logger {
	level := cfg.General.LogLevel
	if global.verbose {
		level = "debug"
	}
	return logging.New(logging.LoggerConfig{
		ServiceName: "datetool",
		Level:       level,
		Format:      cfg.General.LogFormat,
		Output:      opts.Err,
		RunID:       logging.NewRunID(),
	})
}

func location(opts Options, cfg *config.Config) (*time.Location, error) {
	if opts.Location != nil {
		return opts.Location, nil
	}
	return cfg.Location()
}

func runDifference(cmd *cobra.Command, opts Options, global *globalOptions, o *rootOptions) error {
	cfg, err := loadConfig(global)
	if err != nil {
		return err
	}
	logger := newLogger(opts, global, cfg)
	logger.Debug("configuration loaded", "source", cfg.Source, "unit", cfg.Calculation.DefaultUnit, "output", cfg.Output.Format)

	unitName := cfg.Calculation.DefaultUnit
	if cmd.Flags().Changed("unit") {
		unitName = o.unit
	}
	unit, err := difference.ParseUnit(unitName)
	if err != nil {
		return err
	}

	formatName := cfg.Output.Format
	if cmd.Flags().Changed("output") {
		formatName = o.output
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	loc, err := location(opts, cfg)
	if err != nil {
		return err
	}

	start, err := parseDate(o.startDate, loc)
	if err != nil {
		logger.Debug("start date rejected", "input", o.startDate, "error", err.Error())
		return err
	}
	end, err := parseDate(o.endDate, loc)
	if err != nil {
		logger.Debug("end date rejected", "input", o.endDate, "error", err.Error())
		return err
	}
	logger.Debug("dates parsed", "start", start.Format(time.RFC3339Nano), "end", end.Format(time.RFC3339Nano))

	engine := difference.New(start, end, difference.WithUnit(unit))
	rep := report.Report{Start: start, End: end, Unit: unit}
	if kinds := o.kinds(); len(kinds) > 0 {
		rep.Results = engine.Results(kinds...)
	}
	for _, r := range rep.Results {
		logger.Debug("calculated", "kind", r.Kind.Key(), "unit", r.Unit.String(), "value", r.Value)
	}

	if err := report.Render(cmd.OutOrStdout(), format, rep); err != nil {
		return dterror.Wrap(err, "failed to write results").
			WithCode(dterror.CodeInternal).
			WithOperation("cmd.runDifference")
	}
	return nil
}

// kinds returns the selected calculations in output order
func (o *rootOptions) kinds() []difference.Kind {
	var kinds []difference.Kind
	if o.daysBetween {
		kinds = append(kinds, difference.KindDays)
	}
	if o.weekdaysBetween {
		kinds = append(kinds, difference.KindWeekdays)
	}
	if o.weeksBetween {
		kinds = append(kinds, difference.KindCompleteWeeks)
	}
	return kinds
}

func parseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := timex.ParseISOInLocation(value, loc)
	if err != nil {
		return time.Time{}, dterror.Wrap(err, "invalid date").
			WithOperation("cmd.parseDate").
			WithDetail("input", value)
	}
	return t, nil
}
