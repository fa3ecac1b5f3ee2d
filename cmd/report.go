package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/zoo/internal/config"
	"github.com/zjrosen/zoo/internal/flags"
	"github.com/zjrosen/zoo/internal/log"
	"github.com/zjrosen/zoo/internal/presentation"
	"github.com/zjrosen/zoo/internal/pubsub"
	"github.com/zjrosen/zoo/internal/roster"
	"github.com/zjrosen/zoo/internal/tracing"
	"github.com/zjrosen/zoo/internal/watcher"
	"github.com/zjrosen/zoo/internal/zoo/domain"
	"github.com/zjrosen/zoo/internal/zoo/registry"
	"github.com/zjrosen/zoo/internal/zoo/report"
	"github.com/zjrosen/zoo/internal/zoo/store"
)

// reportOptions are the inputs of one report run.
type reportOptions struct {
	Animals   []string
	Employees []string
	Roster    string
	Show      []string
	Sections  []string
	Watch     bool
}

var reportOpts reportOptions

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Seed the zoo and print statistics, schedules and staff",
	Long: `Add animals and employees, then print the requested report sections.

Entries come from the roster file (--roster or the "roster" config key) and
then from --animal/--employee flags, in order. An unknown kind is reported
with the list of available kinds and skipped.

Sections:
  stat   population total and per-species counts
  sched  feeding, medical examination and enclosure cleaning schedules
  emps   staff with their responsibilities
  show   sound and daily activity of each --show species

Examples:
  zoo report --animal wolf:Grey --animal parrot:Kiwi
  zoo report --roster roster.yaml --section sched
  zoo report --roster roster.yaml --employee vet:Anna --section emps
  zoo report --roster roster.yaml --show wolf --format json
  zoo report --roster roster.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if reportOpts.Watch {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchReport(ctx, cmd.OutOrStdout(), reportOpts, watcher.DefaultDebounce)
		}
		return runReport(cmd.Context(), cmd.OutOrStdout(), reportOpts)
	},
}

func init() {
	reportCmd.Flags().StringArrayVarP(&reportOpts.Animals, "animal", "a", nil,
		"add an animal as kind:name (repeatable, e.g. --animal wolf:Grey)")
	reportCmd.Flags().StringArrayVarP(&reportOpts.Employees, "employee", "e", nil,
		"add an employee as kind:name (repeatable, e.g. --employee keeper:Leo)")
	reportCmd.Flags().StringVarP(&reportOpts.Roster, "roster", "r", "",
		"YAML roster of animals and employees loaded before the flags")
	reportCmd.Flags().StringArrayVar(&reportOpts.Show, "show", nil,
		"describe the animals of a species (repeatable)")
	reportCmd.Flags().StringSliceVarP(&reportOpts.Sections, "section", "s", nil,
		"sections to print: stat, sched, emps, show (default stat,sched,emps)")
	reportCmd.Flags().BoolVarP(&reportOpts.Watch, "watch", "w", false,
		"print the report again whenever the roster file changes")
	rootCmd.AddCommand(reportCmd)
}

func runReport(ctx context.Context, w io.Writer, opts reportOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	sections, err := resolveSections(opts)
	if err != nil {
		return err
	}
	plans, err := cfg.Schedule.Plans()
	if err != nil {
		return err
	}

	var rep presentation.Report
	zoo := store.New(store.WithPublisher(pubsub.PublisherFunc[store.Event](
		func(_ pubsub.EventType, e store.Event) {
			rep.Outcomes = append(rep.Outcomes, presentation.Outcome{Added: &e})
		},
	)))

	if err := seed(ctx, zoo, opts, &rep); err != nil {
		return err
	}

	_, span := tracing.Start(ctx, currentTracer(), tracing.SpanRender,
		attribute.StringSlice(tracing.AttrSection, sectionNames(sections)),
		attribute.String(tracing.AttrFormat, cfg.Output.Format),
	)
	for _, kind := range sections {
		switch kind {
		case presentation.SectionStat:
			rep.Sections = append(rep.Sections, presentation.StatSection(report.Summarize(zoo.Animals())))
		case presentation.SectionSched:
			rep.Sections = append(rep.Sections, presentation.SchedSection(plans.CareDay(zoo.Animals())))
		case presentation.SectionEmps:
			rep.Sections = append(rep.Sections, presentation.EmpsSection(report.StaffInfo(zoo.Employees())))
		case presentation.SectionShow:
			for _, species := range opts.Show {
				detail := report.SpeciesDetail(species, zoo.AnimalsBySpecies(species))
				rep.Sections = append(rep.Sections, presentation.ShowSection(detail))
			}
		}
	}
	err = newFormatter(w).FormatReport(rep)
	tracing.End(span, err)
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	log.Debug(log.CatReport, "report rendered", "sections", len(rep.Sections))
	return nil
}

// watchReport prints the report, then prints it again after every change to
// the roster file until ctx is done. A failed run is reported and watching
// continues, so a half-saved roster does not end the session.
func watchReport(ctx context.Context, w io.Writer, opts reportOptions, debounce time.Duration) error {
	rosterPath := opts.Roster
	if rosterPath == "" {
		rosterPath = cfg.Roster
	}
	if rosterPath == "" {
		return domain.NewInvalidEntryError("roster", "--watch needs a roster file (--roster or the roster config key)")
	}

	fw, err := watcher.New(watcher.Config{Files: []string{rosterPath}, Debounce: debounce})
	if err != nil {
		return err
	}
	defer func() { _ = fw.Stop() }()
	changes, err := fw.Start()
	if err != nil {
		return err
	}

	render := func() {
		if err := runReport(ctx, w, opts); err != nil {
			log.Warn(log.CatRoster, "report failed while watching", "path", rosterPath, "error", err)
			_ = newFormatter(w).FormatError(err)
		}
	}

	render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			log.Debug(log.CatRoster, "roster changed", "path", rosterPath)
			render()
		}
	}
}

// resolveSections parses --section. Without it the default sections are
// used, followed by show when --show names a species.
func resolveSections(opts reportOptions) ([]presentation.SectionKind, error) {
	if len(opts.Sections) == 0 {
		sections := presentation.DefaultSections()
		if len(opts.Show) > 0 {
			sections = append(sections, presentation.SectionShow)
		}
		return sections, nil
	}

	sections := make([]presentation.SectionKind, 0, len(opts.Sections))
	for _, name := range opts.Sections {
		kind, err := presentation.ParseSection(name)
		if err != nil {
			return nil, err
		}
		if kind == presentation.SectionShow && len(opts.Show) == 0 {
			return nil, domain.NewInvalidEntryError("show", "the show section needs at least one --show species")
		}
		sections = append(sections, kind)
	}
	return sections, nil
}

func sectionNames(sections []presentation.SectionKind) []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = string(s)
	}
	return names
}

// seed adds the roster entries, then the flag entries, to zoo.
func seed(ctx context.Context, zoo *store.Zoo, opts reportOptions, rep *presentation.Report) (err error) {
	_, span := tracing.Start(ctx, currentTracer(), tracing.SpanSeed)
	defer func() {
		animals, employees := zoo.Counts()
		span.SetAttributes(
			attribute.Int(tracing.AttrAnimals, animals),
			attribute.Int(tracing.AttrEmployees, employees),
			attribute.Int(tracing.AttrSkipped, len(rep.Skipped())),
		)
		tracing.End(span, err)
	}()

	var animals, employees []roster.Entry

	rosterPath := opts.Roster
	if rosterPath == "" {
		rosterPath = cfg.Roster
	}
	if rosterPath != "" {
		r, err := roster.LoadFile(rosterPath)
		if err != nil {
			return err
		}
		span.AddEvent(tracing.EventRosterRead, trace.WithAttributes(attribute.String("path", rosterPath)))
		animals = append(animals, r.Animals...)
		employees = append(employees, r.Employees...)

		if opts.Roster != "" && featureFlags.Enabled(flags.FlagRosterAutosave) {
			if err := config.SaveRoster(configPath(), opts.Roster); err != nil {
				log.Warn(log.CatConfig, "roster autosave failed", "error", err)
			}
		}
	}

	for _, s := range opts.Animals {
		e, err := roster.ParseEntry(s)
		if err != nil {
			return fmt.Errorf("--animal: %w", err)
		}
		animals = append(animals, e)
	}
	for _, s := range opts.Employees {
		e, err := roster.ParseEntry(s)
		if err != nil {
			return fmt.Errorf("--employee: %w", err)
		}
		employees = append(employees, e)
	}

	for _, e := range animals {
		a, ok := registry.CreateAnimal(e.Kind, e.Name)
		if !ok {
			if err := reject(span, rep, unknownKind(registry.Animals().Lookup, registry.AnimalDomain, e.Kind, registry.ListAnimalKinds())); err != nil {
				return err
			}
			continue
		}
		zoo.AddAnimal(a)
	}
	for _, e := range employees {
		emp, ok := registry.CreateEmployee(e.Kind, e.Name)
		if !ok {
			if err := reject(span, rep, unknownKind(registry.Employees().Lookup, registry.EmployeeDomain, e.Kind, registry.ListEmployeeKinds())); err != nil {
				return err
			}
			continue
		}
		zoo.AddEmployee(emp)
	}
	return nil
}

// reject records an unknown kind. With strict kinds enabled the run stops.
func reject(span trace.Span, rep *presentation.Report, err *domain.UnknownKindError) error {
	span.AddEvent(tracing.EventUnknownKind, trace.WithAttributes(
		attribute.String("domain", err.Domain),
		attribute.String("token", err.Token),
	))
	if featureFlags.Enabled(flags.FlagStrictKinds) {
		return err
	}
	rep.Outcomes = append(rep.Outcomes, presentation.Outcome{Skipped: err})
	return nil
}

// unknownKind returns the lookup failure for token. A token that resolves
// but whose construction failed gets the same not-found treatment.
func unknownKind(lookup func(string) (string, error), domainName, token string, available []string) *domain.UnknownKindError {
	_, err := lookup(token)
	var kindErr *domain.UnknownKindError
	if errors.As(err, &kindErr) {
		return kindErr
	}
	return &domain.UnknownKindError{Domain: domainName, Token: token, Available: available}
}

func currentTracer() trace.Tracer {
	if provider == nil {
		return nil
	}
	return provider.Tracer()
}
