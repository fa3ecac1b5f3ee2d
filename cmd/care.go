package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/zoo/internal/log"
	"github.com/zjrosen/zoo/internal/presentation"
	"github.com/zjrosen/zoo/internal/roster"
	"github.com/zjrosen/zoo/internal/tracing"
	"github.com/zjrosen/zoo/internal/zoo/domain"
	"github.com/zjrosen/zoo/internal/zoo/registry"
)

var (
	careEmployee string
	careAnimal   string
)

var careCmd = &cobra.Command{
	Use:       "care <feed|clean|treat>",
	Short:     "Have an employee feed, clean or treat an animal",
	ValidArgs: []string{"feed", "clean", "treat"},
	Long: `Perform one care operation and print what happened.

Zoo keepers feed animals and clean enclosures; veterinarians examine and
treat. Asking an employee for something outside their role fails.

Examples:
  zoo care feed --employee keeper:Leo --animal wolf:Grey
  zoo care treat --employee vet:Anna --animal snake:Kaa`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCare(cmd.Context(), cmd.OutOrStdout(), args[0], careEmployee, careAnimal)
	},
}

func init() {
	careCmd.Flags().StringVarP(&careEmployee, "employee", "e", "", "employee as kind:name")
	careCmd.Flags().StringVarP(&careAnimal, "animal", "a", "", "animal as kind:name")
	_ = careCmd.MarkFlagRequired("employee")
	_ = careCmd.MarkFlagRequired("animal")
	rootCmd.AddCommand(careCmd)
}

func runCare(ctx context.Context, w io.Writer, verb, employeeEntry, animalEntry string) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := tracing.Start(ctx, currentTracer(), tracing.SpanCare, attribute.String(tracing.AttrCapability, verb))
	defer func() { tracing.End(span, err) }()

	capability, ok := domain.ParseCapability(verb)
	if !ok {
		return domain.NewInvalidEntryError("capability",
			fmt.Sprintf("unknown care operation %q (available: feed, clean, treat)", verb))
	}

	ee, err := roster.ParseEntry(employeeEntry)
	if err != nil {
		return fmt.Errorf("--employee: %w", err)
	}
	ae, err := roster.ParseEntry(animalEntry)
	if err != nil {
		return fmt.Errorf("--animal: %w", err)
	}

	employee, ok := registry.CreateEmployee(ee.Kind, ee.Name)
	if !ok {
		return unknownKind(registry.Employees().Lookup, registry.EmployeeDomain, ee.Kind, registry.ListEmployeeKinds())
	}
	animal, ok := registry.CreateAnimal(ae.Kind, ae.Name)
	if !ok {
		return unknownKind(registry.Animals().Lookup, registry.AnimalDomain, ae.Kind, registry.ListAnimalKinds())
	}

	message, err := employee.Perform(capability, animal)
	if err != nil {
		log.Debug(log.CatCLI, "care refused", "employee", employee.String(), "capability", capability.Verb())
		return err
	}
	return newFormatter(w).FormatCare(presentation.FromCare(employee, capability, animal, message))
}
