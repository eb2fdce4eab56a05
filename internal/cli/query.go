package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/carquery/pkg/errors"
	"github.com/matzehuels/carquery/pkg/integrations/carquery"
)

var trimHeaders = []string{"ID", "Year", "Make", "Model", "Trim", "Body", "Engine", "Power", "Drive", "Transmission"}

func trimRow(t carquery.Trim) []string {
	var engine []string
	if t.EngineCC > 0 {
		engine = append(engine, fmt.Sprintf("%d cc", t.EngineCC))
	}
	if t.EngineType != "" {
		engine = append(engine, t.EngineType)
	}
	if t.EngineCylinders > 0 {
		engine = append(engine, fmt.Sprintf("%d cyl", t.EngineCylinders))
	}
	power := "-"
	if t.EnginePowerPS > 0 {
		power = fmt.Sprintf("%d PS", t.EnginePowerPS)
	}
	return []string{
		strconv.Itoa(t.ID), strconv.Itoa(t.Year), dash(t.MakeDisplay), t.Name, dash(t.Trim),
		dash(t.Body), dash(strings.Join(engine, " ")), power, dash(t.Drive), dash(t.TransmissionType),
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// output prints v as JSON with --json, otherwise through render.
func (c *CLI) output(w io.Writer, v any, render func()) error {
	if c.flags.json {
		return printJSON(w, v)
	}
	render()
	return nil
}

// =============================================================================
// years
// =============================================================================

func (c *CLI) yearsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "Show the range of model years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, closeFn, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			yr, err := client.GetYearRange(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			return c.output(w, yr, func() {
				printKeyValue(w, "First year", strconv.Itoa(yr.MinYear))
				printKeyValue(w, "Last year", strconv.Itoa(yr.MaxYear))
			})
		},
	}
}

// =============================================================================
// makes
// =============================================================================

func (c *CLI) makesCommand() *cobra.Command {
	var soldInUSA bool

	cmd := &cobra.Command{
		Use:     "makes <year>",
		Short:   "List the makes active in a model year",
		Example: "  carquery makes 2011 --us",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := errors.ParseYear(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, closeFn, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			prog := newProgress(loggerFromContext(ctx))
			makes, err := client.GetMakes(ctx, year, soldInUSA)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched %d makes", len(makes)))

			w := cmd.OutOrStdout()
			return c.output(w, makes, func() {
				rows := make([][]string, len(makes))
				for i, m := range makes {
					common := ""
					if m.IsCommon {
						common = iconSuccess
					}
					rows[i] = []string{m.ID, m.Display, dash(m.Country), common}
				}
				printTable(w, []string{"ID", "Make", "Country", "Common"}, rows)
			})
		},
	}
	cmd.Flags().BoolVar(&soldInUSA, "us", false, "only makes sold in the USA")
	return cmd
}

// =============================================================================
// models
// =============================================================================

func (c *CLI) modelsCommand() *cobra.Command {
	var (
		soldInUSA bool
		body      string
	)

	cmd := &cobra.Command{
		Use:     "models <year> <make>",
		Short:   "List the models of a make in a model year",
		Example: "  carquery models 2000 ford --body suv",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := errors.ParseYear(args[0])
			if err != nil {
				return err
			}
			if err := errors.ValidateMake(args[1]); err != nil {
				return err
			}
			style, err := parseBodyFlag(body)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, closeFn, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			prog := newProgress(loggerFromContext(ctx))
			models, err := client.GetModels(ctx, carquery.GetModelsParams{
				Year:      year,
				Make:      args[1],
				SoldInUSA: soldInUSA,
				Body:      style,
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched %d models", len(models)))

			w := cmd.OutOrStdout()
			return c.output(w, models, func() {
				rows := make([][]string, len(models))
				for i, m := range models {
					rows[i] = []string{m.Name, m.MakeID}
				}
				printTable(w, []string{"Model", "Make"}, rows)
			})
		},
	}
	cmd.Flags().BoolVar(&soldInUSA, "us", false, "only models sold in the USA")
	cmd.Flags().StringVar(&body, "body", "", "body style (e.g. SUV, Sedan, Coupe)")
	return cmd
}

func parseBodyFlag(s string) (carquery.BodyStyle, error) {
	if s == "" {
		return "", nil
	}
	b, ok := carquery.ParseBodyStyle(s)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidBody, "unknown body style %q", s)
	}
	return b, nil
}

// =============================================================================
// trims
// =============================================================================

// trimsFlags binds one flag per trim filter.
type trimsFlags struct {
	params carquery.GetTrimsParams
	body   string
}

func (f *trimsFlags) register(fs *pflag.FlagSet) {
	p := &f.params
	fs.IntVar(&p.Year, "year", 0, "model year")
	fs.StringVar(&p.Make, "make", "", "make id (e.g. ford)")
	fs.StringVar(&p.Model, "model", "", "model name")
	fs.StringVar(&f.body, "body", "", "body style")
	fs.IntVar(&p.Doors, "doors", 0, "number of doors")
	fs.StringVar(&p.Drive, "drive", "", "drive type (e.g. FWD, AWD)")
	fs.StringVar(&p.EnginePosition, "engine-position", "", "engine position")
	fs.StringVar(&p.EngineType, "engine-type", "", "engine type")
	fs.StringVar(&p.FuelType, "fuel-type", "", "fuel type")
	fs.BoolVar(&p.FullResults, "full-results", false, "request the full result set")
	fs.StringVar(&p.Keyword, "keyword", "", "free-text keyword")
	fs.IntVar(&p.MinCylinders, "min-cylinders", 0, "minimum cylinders")
	fs.Float64Var(&p.MinLKMHwy, "min-lkm-hwy", 0, "minimum highway consumption (l/100km)")
	fs.IntVar(&p.MinHorsepower, "min-power", 0, "minimum power (PS)")
	fs.IntVar(&p.MinTopSpeed, "min-top-speed", 0, "minimum top speed (km/h)")
	fs.IntVar(&p.MinTorque, "min-torque", 0, "minimum torque (Nm)")
	fs.IntVar(&p.MinWeight, "min-weight", 0, "minimum weight (kg)")
	fs.IntVar(&p.MinYear, "min-year", 0, "earliest model year")
	fs.IntVar(&p.MaxCylinders, "max-cylinders", 0, "maximum cylinders")
	fs.Float64Var(&p.MaxLKMHwy, "max-lkm-hwy", 0, "maximum highway consumption (l/100km)")
	fs.IntVar(&p.MaxHorsepower, "max-power", 0, "maximum power (PS)")
	fs.IntVar(&p.MaxTopSpeed, "max-top-speed", 0, "maximum top speed (km/h)")
	fs.IntVar(&p.MaxTorque, "max-torque", 0, "maximum torque (Nm)")
	fs.IntVar(&p.MaxWeight, "max-weight", 0, "maximum weight (kg)")
	fs.IntVar(&p.MaxYear, "max-year", 0, "latest model year")
	fs.IntVar(&p.Seats, "seats", 0, "number of seats")
	fs.BoolVar(&p.SoldInUSA, "us", false, "only trims sold in the USA")
}

// build returns the filters with the body style resolved.
func (f *trimsFlags) build() (carquery.GetTrimsParams, error) {
	p := f.params
	style, err := parseBodyFlag(f.body)
	if err != nil {
		return p, err
	}
	p.BodyStyle = style
	return p, nil
}

func (c *CLI) trimsCommand() *cobra.Command {
	var flags trimsFlags

	cmd := &cobra.Command{
		Use:     "trims",
		Short:   "Search trims by any combination of filters",
		Example: "  carquery trims --make ford --year 2011 --min-cylinders 6",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.build()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, closeFn, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			var trims []carquery.Trim
			if err := withSpinner(ctx, "Searching trims...", !c.flags.json, func() error {
				trims, err = client.GetTrims(ctx, params)
				return err
			}); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			return c.output(w, trims, func() {
				if len(trims) == 0 {
					printInfo(w, "No trims match")
					return
				}
				rows := make([][]string, len(trims))
				for i, t := range trims {
					rows[i] = trimRow(t)
				}
				printTable(w, trimHeaders, rows)
				printDetail(w, "%d trims", len(trims))
			})
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

// =============================================================================
// model
// =============================================================================

func (c *CLI) modelCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "model <id>",
		Short:   "Show the full specification of one trim",
		Example: "  carquery model 11459",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := errors.ParseModelID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, closeFn, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			d, err := client.GetModelDetail(ctx, id)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			return c.output(w, d, func() { printModelDetail(w, d) })
		},
	}
}

func printModelDetail(w io.Writer, d *carquery.ModelDetail) {
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%d %s %s %s", d.Year, d.MakeDisplay, d.Name, d.Trim)))

	withUnit := func(s, unit string) string {
		if unit == "" {
			return s
		}
		return s + " " + unit
	}
	num := func(v int, unit string) string {
		if v == 0 {
			return "-"
		}
		return withUnit(strconv.Itoa(v), unit)
	}
	dec := func(v float64, unit string) string {
		if v == 0 {
			return "-"
		}
		return withUnit(strconv.FormatFloat(v, 'f', -1, 64), unit)
	}
	opt := func(s *string) string {
		if s == nil {
			return "-"
		}
		return dash(*s)
	}
	yes := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	rows := []struct{ key, value string }{
		{"ID", strconv.Itoa(d.ID)},
		{"Body", dash(d.Body)},
		{"Country", dash(d.MakeCountry)},
		{"Engine", fmt.Sprintf("%s, %s, %s", dec(d.EngineLiters, "l"), num(d.EngineCylinders, "cyl"), dash(d.EngineType))},
		{"Engine position", dash(d.EnginePosition)},
		{"Fuel", dash(d.EngineFuel)},
		{"Power", fmt.Sprintf("%s / %s / %s", num(d.EnginePowerPS, "PS"), num(d.EnginePowerHP, "hp"), num(d.EnginePowerKW, "kW"))},
		{"Torque", fmt.Sprintf("%s / %s", num(d.EngineTorqueNm, "Nm"), num(d.EngineTorqueLbFt, "lb-ft"))},
		{"Compression", opt(d.EngineCompression)},
		{"Top speed", fmt.Sprintf("%s / %s", num(d.TopSpeedKPH, "km/h"), num(d.TopSpeedMPH, "mph"))},
		{"0-100 km/h", dec(d.ZeroTo100KPH, "s")},
		{"Drive", dash(d.Drive)},
		{"Transmission", dash(d.TransmissionType)},
		{"Seats", num(d.Seats, "")},
		{"Doors", num(d.Doors, "")},
		{"Weight", fmt.Sprintf("%s / %s", num(d.WeightKilograms, "kg"), num(d.WeightPounds, "lbs"))},
		{"Length", fmt.Sprintf("%s / %s", num(d.LengthMillimeters, "mm"), dec(d.LengthInches, "in"))},
		{"Wheelbase", fmt.Sprintf("%s / %s", num(d.WheelbaseMillimeters, "mm"), dec(d.WheelbaseInches, "in"))},
		{"Consumption (l/100km)", fmt.Sprintf("%s hwy, %s city, %s mixed", dec(d.LKMHwy, ""), dec(d.LKMCity, ""), dec(d.LKMMixed, ""))},
		{"Fuel capacity", fmt.Sprintf("%s / %s", dec(d.FuelCapLiters, "l"), dec(d.FuelCapGallons, "gal"))},
		{"CO2", opt(d.CO2)},
		{"Sold in USA", yes(d.SoldInUSA)},
	}
	for _, r := range rows {
		printKeyValue(w, r.key, r.value)
	}

	if names := colorNames(d.ExteriorColors); names != "" {
		printKeyValue(w, "Exterior colors", names)
	}
	if names := colorNames(d.InteriorColors); names != "" {
		printKeyValue(w, "Interior colors", names)
	}
}

func colorNames(colors []carquery.Color) string {
	names := make([]string, 0, len(colors))
	for _, col := range colors {
		if col.Name != "" {
			names = append(names, col.Name)
		}
	}
	return strings.Join(names, ", ")
}
