package cli

import (
	"fmt"
	"io"

	"github.com/rickb777/period"
	"github.com/spf13/pflag"
)

// Options holds the parsed command line
type Options struct {
	From      string
	To        string
	Timezone  string
	Period    period.Period
	HasPeriod bool
	JSON      bool
	ShowZero  bool
	Verbose   bool
}

// ParseOptions parses args (without the program name). Up to two positional
// arguments are accepted as from and to.
func ParseOptions(args []string, usage io.Writer) (Options, error) {
	var opts Options

	flags := pflag.NewFlagSet("timespan", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.SetOutput(usage)

	flags.StringVarP(&opts.From, "from", "f", "", "start instant; defaults to now")
	flags.StringVarP(&opts.To, "to", "t", "", "target instant; defaults to now")
	flags.StringVar(&opts.Timezone, "tz", "", "IANA time zone for instants without an offset")
	flags.VarP(&opts.Period, "period", "p", "ISO-8601 period added to from instead of --to, e.g. P1Y2M")
	flags.BoolVar(&opts.JSON, "json", false, "print the result as JSON")
	flags.BoolVarP(&opts.ShowZero, "all", "a", false, "also list units with a zero amount")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log to stderr")

	if err := flags.Parse(args); err != nil {
		return Options{}, err
	}

	rest := flags.Args()
	if len(rest) > 2 {
		return Options{}, fmt.Errorf("too many arguments: %v", rest[2:])
	}
	if len(rest) > 0 {
		if flags.Changed("from") {
			return Options{}, fmt.Errorf("from given both as flag and argument")
		}
		opts.From = rest[0]
	}
	if len(rest) > 1 {
		if flags.Changed("to") {
			return Options{}, fmt.Errorf("to given both as flag and argument")
		}
		opts.To = rest[1]
	}

	opts.HasPeriod = flags.Changed("period")
	return opts, nil
}

// PeriodString returns the period flag in ISO-8601 form, or "" when absent
func (o Options) PeriodString() string {
	if !o.HasPeriod {
		return ""
	}
	return o.Period.String()
}
