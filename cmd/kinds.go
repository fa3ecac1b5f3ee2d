package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/zoo/internal/presentation"
	"github.com/zjrosen/zoo/internal/zoo/registry"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the animal and employee kinds",
	Long: `List every animal and employee kind that can be added, with the
employee aliases.

Examples:
  zoo kinds
  zoo kinds --format json | jq '.animals[].kind'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return newFormatter(cmd.OutOrStdout()).FormatKinds(buildKinds())
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}

// buildKinds describes every registered kind by instantiating a sample.
func buildKinds() presentation.KindsDTO {
	kinds := presentation.KindsDTO{
		Animals:   make([]presentation.KindDTO, 0),
		Employees: make([]presentation.KindDTO, 0),
		Aliases:   registry.Employees().Aliases(),
	}
	for _, kind := range registry.ListAnimalKinds() {
		dto := presentation.KindDTO{Kind: kind}
		if a, ok := registry.CreateAnimal(kind, ""); ok {
			dto.Label = a.Species()
		}
		kinds.Animals = append(kinds.Animals, dto)
	}
	for _, kind := range registry.ListEmployeeKinds() {
		dto := presentation.KindDTO{Kind: kind}
		if e, ok := registry.CreateEmployee(kind, ""); ok {
			dto.Label = e.Role()
			dto.Responsibilities = e.Responsibilities()
		}
		kinds.Employees = append(kinds.Employees, dto)
	}
	return kinds
}
