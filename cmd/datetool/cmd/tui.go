package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/datetool/internal/difference"
	"github.com/msto63/datetool/internal/tui/calculator"
)

type tuiOptions struct {
	startDate string
	endDate   string
	unit      string
}

func newTUICommand(opts Options, global *globalOptions) *cobra.Command {
	o := &tuiOptions{}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Starts the interactive calculator",
		Long: `Starts an interactive terminal calculator that recomputes the
difference while you type.

Navigation:
  Tab       - Next field
  Shift+Tab - Previous field
  Ctrl+U    - Cycle the result unit
  Esc       - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(global)
			if err != nil {
				return err
			}
			logger := newLogger(opts, global, cfg)

			unitName := cfg.Calculation.DefaultUnit
			if cmd.Flags().Changed("unit") {
				unitName = o.unit
			}
			unit, err := difference.ParseUnit(unitName)
			if err != nil {
				return err
			}

			loc, err := location(opts, cfg)
			if err != nil {
				return err
			}

			logger.Debug("starting calculator", "unit", unit.String(), "location", loc.String())
			return opts.RunTUI(calculator.Config{
				Start:    o.startDate,
				End:      o.endDate,
				Unit:     unit,
				Location: loc,
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.startDate, "startDate", "x", "", "Prefills the start date")
	f.StringVarP(&o.endDate, "endDate", "y", "", "Prefills the end date")
	f.StringVarP(&o.unit, "unit", "u", "", "Initial result unit")
	return cmd
}
