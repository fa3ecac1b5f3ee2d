package registry

import "github.com/zjrosen/zoo/internal/zoo/domain"

// Domain names of the built-in catalogs.
const (
	AnimalDomain   = "animal"
	EmployeeDomain = "employee"
)

// Canonical employee kind names.
const (
	KindZooKeeper = "ZooKeeper"
	KindVet       = "Vet"
)

var (
	animals = New[domain.Animal](AnimalDomain,
		WithFallback(knownAnimals()...),
	)
	employees = New[domain.Employee](EmployeeDomain,
		WithFallback(knownEmployees()...),
		WithAliases[domain.Employee](employeeAliases()),
	)
)

func init() {
	for _, s := range domain.AllSpecies() {
		animals.MustRegister(s.String(), animalFactory(s))
	}
	for _, r := range domain.AllRoles() {
		employees.MustRegister(employeeKindName(r), employeeFactory(r))
	}
}

// Animals returns the process-wide animal kind registry.
func Animals() *Registry[domain.Animal] { return animals }

// Employees returns the process-wide employee kind registry.
func Employees() *Registry[domain.Employee] { return employees }

// ListAnimalKinds returns the sorted lowercase animal kind names.
func ListAnimalKinds() []string { return animals.Kinds() }

// ListEmployeeKinds returns the sorted lowercase employee kind names.
func ListEmployeeKinds() []string { return employees.Kinds() }

// CreateAnimal builds an animal from a kind token such as "wolf" or "WOLF".
func CreateAnimal(token, name string) (domain.Animal, bool) {
	return animals.Create(token, name)
}

// CreateEmployee builds an employee from a kind token or alias such as
// "keeper", "zookeeper", "vet" or "veterinarian".
func CreateEmployee(token, name string) (domain.Employee, bool) {
	return employees.Create(token, name)
}

func animalFactory(s domain.Species) Factory[domain.Animal] {
	return func(name string) (domain.Animal, error) {
		return domain.NewAnimal(s, name)
	}
}

func employeeFactory(r domain.RoleKind) Factory[domain.Employee] {
	return func(name string) (domain.Employee, error) {
		return domain.NewEmployee(r, name)
	}
}

func employeeKindName(r domain.RoleKind) string {
	switch r {
	case domain.RoleZooKeeper:
		return KindZooKeeper
	case domain.RoleVet:
		return KindVet
	default:
		return r.String()
	}
}

// knownAnimals is the static fallback list of animal kinds.
func knownAnimals() []Kind[domain.Animal] {
	return []Kind[domain.Animal]{
		{Name: "Wolf", New: animalFactory(domain.SpeciesWolf)},
		{Name: "Parrot", New: animalFactory(domain.SpeciesParrot)},
		{Name: "Snake", New: animalFactory(domain.SpeciesSnake)},
		{Name: "Monkey", New: animalFactory(domain.SpeciesMonkey)},
	}
}

// knownEmployees is the static fallback list of employee kinds.
func knownEmployees() []Kind[domain.Employee] {
	return []Kind[domain.Employee]{
		{Name: KindZooKeeper, New: employeeFactory(domain.RoleZooKeeper)},
		{Name: KindVet, New: employeeFactory(domain.RoleVet)},
	}
}

func employeeAliases() map[string]string {
	return map[string]string{
		"keeper":       KindZooKeeper,
		"zookeeper":    KindZooKeeper,
		"vet":          KindVet,
		"veterinarian": KindVet,
	}
}
