// localeid is a locale identification tool: parse, canonicalize and match locale
// tags against a built-in registry of locales and their format symbols.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/minios-linux/localeid/config"
	"github.com/minios-linux/localeid/defaultlocale"
	"github.com/minios-linux/localeid/i18n"
	"github.com/minios-linux/localeid/langmeta"
	"github.com/minios-linux/localeid/propfile"
	"github.com/minios-linux/localeid/registry"
	"github.com/minios-linux/localeid/symbols"
	"github.com/minios-linux/localeid/tag"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ---------------------------------------------------------------------------
// Application state
// ---------------------------------------------------------------------------

// app carries what every subcommand needs. It is filled in by the root
// command's PersistentPreRunE once flags are parsed.
type app struct {
	rootDir  string
	logLevel string

	cfg      *config.Config
	logger   *slog.Logger
	registry *registry.Registry
	locale   *defaultlocale.Holder
}

func newLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
	}))
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.rootDir)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), level, cfg.NoColor)

	opts := []registry.Option{
		registry.WithLogger(a.logger),
		registry.WithLanguages(cfg.Languages...),
		registry.WithUnsupported(cfg.Unsupported...),
	}
	switch {
	case cfg.Data != "":
		a.registry, err = registry.LoadFile(cfg.Data, opts...)
	case len(cfg.Languages) > 0 || len(cfg.Unsupported) > 0:
		a.registry, err = registry.Open(opts...)
	default:
		a.registry = registry.Default()
	}
	if err != nil {
		return fmt.Errorf("building locale registry: %w", err)
	}

	a.locale = defaultlocale.New()
	a.resolveDefault()
	return nil
}

// resolveDefault fills the default locale from the configuration, or from
// the environment when none is configured. Failure leaves it unset.
func (a *app) resolveDefault() {
	if a.cfg.Default != "" {
		if err := a.locale.Resolve(a.registry, a.cfg.Default); err != nil {
			a.logger.Warn("configured default locale not usable", "tag", a.cfg.Default, "error", err)
		}
		return
	}

	e, err := defaultlocale.Detect(a.registry)
	if err != nil {
		a.logger.Debug("no default locale from environment", "error", err)
		return
	}
	a.setDefault(e, "environment")
}

// setDefault stores e as the default locale, logging instead of failing
// when the holder refuses it.
func (a *app) setDefault(e *registry.Entry, source string) {
	if err := a.locale.Set(e); err != nil {
		a.logger.Warn("default locale not usable", "source", source, "error", err)
	}
}

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "localeid",
		Short: "Identify locales and show their format symbols",
		Long: `localeid: locale identification without a platform locale database.

Parses BCP-47 (en-AU) and legacy (en_AU) locale identifiers, canonicalizes
them and matches them exactly against a built-in registry of locales with
their date and number format symbols.

Commands:
  parse      Show the subtags and canonical forms of identifiers
  lookup     Match identifiers against the registry
  list       List registry entries
  symbols    Show the format symbols of a locale
  format     Format a number or date with a locale's symbols
  names      List well-known locale names
  default    Show the default locale`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	// Global persistent flags, inherited by all subcommands
	root.PersistentFlags().StringVar(&a.rootDir, "root", ".", "Project root directory (where .localeid.yaml lives)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(
		newParseCmd(),
		newLookupCmd(a),
		newListCmd(a),
		newSymbolsCmd(a),
		newFormatCmd(a),
		newNamesCmd(a),
		newDefaultCmd(a),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")

	if err := newRootCmd().Execute(); err != nil {
		newLogger(os.Stderr, slog.LevelInfo, false).Error(err.Error())
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "localeid version %s\n", version)
			fmt.Fprintf(out, "  commit:    %s\n", commit)
			fmt.Fprintf(out, "  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// parse (show subtags; never fails)
// ---------------------------------------------------------------------------

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse TAG...",
		Short: "Show the subtags and canonical forms of identifiers",
		Long: `Parse locale identifiers and print their subtags, canonical form and
legacy display form. Parsing never fails: unrecognized subtags are kept
and reported in the variant position.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for i, raw := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printTag(out, raw, tag.Parse(raw))
			}
		},
	}
}

func printTag(w io.Writer, raw string, t tag.Tag) {
	wellFormed := i18n.T("no")
	if tag.WellFormed(t) {
		wellFormed = i18n.T("yes")
	}
	rows := [][2]string{
		{i18n.T("Input"), strconv.Quote(raw)},
		{i18n.T("Canonical"), strconv.Quote(t.String())},
		{i18n.T("Legacy"), strconv.Quote(t.Legacy())},
		{i18n.T("Language"), dash(t.Language())},
		{i18n.T("Script"), dash(t.Script())},
		{i18n.T("Country"), dash(t.Country())},
		{i18n.T("Variant"), dash(t.Variant())},
		{i18n.T("Extension"), dash(t.Extension())},
		{i18n.T("BCP 47"), wellFormed},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %-11s %s\n", r[0]+":", r[1])
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// ---------------------------------------------------------------------------
// lookup (exact match against the registry)
// ---------------------------------------------------------------------------

func newLookupCmd(a *app) *cobra.Command {
	var allowUnsupported bool

	cmd := &cobra.Command{
		Use:   "lookup TAG...",
		Short: "Match identifiers against the registry",
		Long: `Match each identifier exactly (ignoring case) against the registry.

Identifiers in the unsupported set are reported separately from plain
misses. The command fails when any identifier is not found, or is
unsupported unless --allow-unsupported is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var missing, unsupported []string

			for _, raw := range args {
				canonical := tag.Canonicalize(raw)
				e, err := a.registry.Match(raw)
				switch {
				case errors.Is(err, registry.ErrUnsupported):
					unsupported = append(unsupported, canonical)
					fmt.Fprintf(out, "%-14s %s\n", canonical, i18n.T("unsupported"))
				case err != nil:
					missing = append(missing, canonical)
					fmt.Fprintf(out, "%-14s %s\n", canonical, i18n.T("not found"))
				default:
					meta := langmeta.Resolve(e.Tag())
					fmt.Fprintf(out, "%-14s %s  %s %s\n", e.String(), i18n.T("supported"), meta.Flag, meta.Name)
				}
			}

			if len(unsupported) > 0 {
				a.logger.Warn(i18n.T("locales known to be unsupported"), "tags", unsupported)
			}
			if len(missing) > 0 {
				return fmt.Errorf("%s: %s", i18n.N("%d locale not found", "%d locales not found", len(missing), len(missing)), strings.Join(missing, ", "))
			}
			if len(unsupported) > 0 && !allowUnsupported {
				return fmt.Errorf("%s: %s", i18n.N("%d locale unsupported", "%d locales unsupported", len(unsupported), len(unsupported)), strings.Join(unsupported, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowUnsupported, "allow-unsupported", false, "Do not fail on identifiers in the unsupported set")

	return cmd
}

// ---------------------------------------------------------------------------
// list (registry entries)
// ---------------------------------------------------------------------------

func newListCmd(a *app) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registry entries",
		Long: `List every locale in the registry in data order, with its legacy form
and display name. Use --language to show one language only.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			language = strings.ToLower(strings.TrimSpace(language))

			n := 0
			for _, e := range a.registry.All() {
				t := e.Tag()
				if language != "" && t.Language() != language {
					continue
				}
				meta := langmeta.Resolve(t)
				fmt.Fprintf(out, "%-14s %-14s %-2s %s\n", dash(t.String()), dash(t.Legacy()), meta.Flag, meta.Name)
				n++
			}
			fmt.Fprintln(out, strings.Repeat("─", 44))
			fmt.Fprintln(out, i18n.N("%d locale", "%d locales", n, n))
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "Only list locales of this language")

	return cmd
}

// ---------------------------------------------------------------------------
// symbols (date and number symbols of one locale)
// ---------------------------------------------------------------------------

const (
	formatText       = "text"
	formatYAML       = "yaml"
	formatProperties = "properties"
)

func newSymbolsCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "symbols TAG",
		Short: "Show the format symbols of a locale",
		Long: `Show the date and number format symbols of a locale.

Formats:
  text        human-readable summary (default)
  yaml        the bundle in the registry data schema
  properties  Java .properties (MonthNames.0=January, DecimalSeparator=.)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.registry.Match(args[0])
			if err != nil {
				return err
			}
			b := symbols.Of(e)

			var data []byte
			switch format {
			case formatText:
				data = []byte(symbolsText(b))
			case formatYAML:
				if data, err = yaml.Marshal(b); err != nil {
					return fmt.Errorf("encoding yaml: %w", err)
				}
			case formatProperties:
				f := propfile.FromBundle(e.String(), b)
				if output != "" {
					if err := f.WriteFile(output); err != nil {
						return err
					}
					a.logger.Info(i18n.T("symbols written"), "tag", e.String(), "path", output)
					return nil
				}
				if data, err = f.Marshal(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (valid: text, yaml, properties)", format)
			}

			if output != "" {
				if err := os.WriteFile(output, data, 0644); err != nil {
					return fmt.Errorf("writing %s: %w", output, err)
				}
				a.logger.Info(i18n.T("symbols written"), "tag", e.String(), "path", output)
				return nil
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, yaml, properties")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func symbolsText(b symbols.Bundle) string {
	var sb strings.Builder
	list := func(label string, names []string) {
		fmt.Fprintf(&sb, "  %-16s %s\n", label+":", strings.Join(names, ", "))
	}
	scalar := func(label, value string) {
		fmt.Fprintf(&sb, "  %-16s %s\n", label+":", strconv.Quote(value))
	}

	sb.WriteString(i18n.T("Date symbols") + "\n")
	list(i18n.T("Eras"), b.Date.Eras)
	list(i18n.T("Months"), b.Date.Months)
	list(i18n.T("Short months"), b.Date.ShortMonths)
	list(i18n.T("Weekdays"), b.Date.Weekdays)
	list(i18n.T("Short weekdays"), b.Date.ShortWeekdays)
	list(i18n.T("AM/PM"), b.Date.AmPm)

	d := b.Decimal
	sb.WriteString("\n" + i18n.T("Number symbols") + "\n")
	scalar(i18n.T("Decimal"), d.DecimalSeparator)
	scalar(i18n.T("Grouping"), d.GroupingSeparator)
	scalar(i18n.T("Percent"), d.Percent)
	scalar(i18n.T("Per mille"), d.PerMill)
	scalar(i18n.T("Digit"), d.Digit)
	scalar(i18n.T("Zero digit"), d.ZeroDigit)
	scalar(i18n.T("Minus sign"), d.MinusSign)
	scalar(i18n.T("Exponent"), d.ExponentSeparator)
	scalar(i18n.T("Pattern sep."), d.PatternSeparator)
	scalar(i18n.T("NaN"), d.NaN)
	scalar(i18n.T("Infinity"), d.Infinity)
	scalar(i18n.T("Currency"), d.CurrencySymbol)
	scalar(i18n.T("Currency code"), d.InternationalCurrency)
	scalar(i18n.T("Monetary dec."), d.MonetaryDecimalSeparator)
	return sb.String()
}

// ---------------------------------------------------------------------------
// format (render a value with a locale's symbols)
// ---------------------------------------------------------------------------

const (
	styleNumber     = "number"
	stylePercent    = "percent"
	styleCurrency   = "currency"
	styleScientific = "scientific"
	styleDate       = "date"
)

func newFormatCmd(a *app) *cobra.Command {
	var (
		style    string
		fraction int
	)

	cmd := &cobra.Command{
		Use:   "format TAG VALUE",
		Short: "Format a number or date with a locale's symbols",
		Long: `Format VALUE with the symbols of the locale TAG.

Styles:
  number      grouped decimal number (default)
  percent     VALUE * 100 followed by the percent sign
  currency    amount with the locale's currency symbol
  scientific  mantissa and exponent
  date        VALUE as YYYY-MM-DD, rendered with month and weekday names`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.registry.Match(args[0])
			if err != nil {
				return err
			}
			s, err := formatValue(e, style, args[1], fraction)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", styleNumber, "Style: number, percent, currency, scientific, date")
	cmd.Flags().IntVar(&fraction, "fraction", 2, "Digits after the decimal separator")

	return cmd
}

func formatValue(e *registry.Entry, style, value string, fraction int) (string, error) {
	if style == styleDate {
		t, err := time.Parse(time.DateOnly, value)
		if err != nil {
			return "", fmt.Errorf("invalid date %q: %w", value, err)
		}
		d := e.Date()
		return fmt.Sprintf("%s, %d %s %d %s",
			d.WeekdayName(t.Weekday()), t.Day(), d.MonthName(t.Month()), t.Year(), d.Era(t.Year())), nil
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", fmt.Errorf("invalid number %q: %w", value, err)
	}
	d := e.Decimal()
	switch style {
	case styleNumber:
		return d.FormatFloat(v, fraction, true), nil
	case stylePercent:
		return d.FormatPercent(v, fraction), nil
	case styleCurrency:
		return d.FormatCurrency(v, fraction), nil
	case styleScientific:
		return d.FormatScientific(v, fraction), nil
	}
	return "", fmt.Errorf("unknown style %q (valid: number, percent, currency, scientific, date)", style)
}

// ---------------------------------------------------------------------------
// names (well-known locales)
// ---------------------------------------------------------------------------

func newNamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "names [NAME...]",
		Short: "List well-known locale names",
		Long:  `List well-known locale names (ENGLISH, CANADA, ...) and their tags, or resolve the given names.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = a.registry.Names()
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				e, ok := a.registry.Named(name)
				if !ok {
					return fmt.Errorf("unknown locale name %q", name)
				}
				fmt.Fprintf(out, "%-20s %s\n", strings.ToUpper(name), strconv.Quote(e.String()))
			}
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// default (configured or detected default locale)
// ---------------------------------------------------------------------------

func newDefaultCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Show the default locale",
		Long: `Show the default locale: the configured one (default: in .localeid.yaml
or LOCALEID_DEFAULT), otherwise the one named by LANGUAGE, LC_ALL,
LC_MESSAGES or LANG if it is in the registry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.locale.Get()
			if err != nil {
				return err
			}
			meta := langmeta.Resolve(e.Tag())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", e.String(), meta.Flag, meta.Name)
			return nil
		},
	}
}
