package report

import (
	"fmt"
	"strings"

	"github.com/zjrosen/zoo/internal/zoo/domain"
)

// Member is one employee line of the staff report.
type Member struct {
	Name             string
	Role             string
	Responsibilities []string
}

// Staff is the employee report.
type Staff struct {
	Total   int
	Members []Member
}

// StaffInfo lists employees in store order with their responsibilities.
func StaffInfo(employees []domain.Employee) Staff {
	members := make([]Member, len(employees))
	for i, e := range employees {
		members[i] = Member{
			Name:             e.Name(),
			Role:             e.Role(),
			Responsibilities: e.Responsibilities(),
		}
	}
	return Staff{Total: len(employees), Members: members}
}

// String renders the staff report. Employees without any capability get no
// responsibilities line.
func (s Staff) String() string {
	var b strings.Builder
	b.WriteString("=== Zoo staff ===\n")
	fmt.Fprintf(&b, "Total employees: %d\n\n", s.Total)

	if len(s.Members) == 0 {
		b.WriteString("There are no employees at the zoo yet.\n")
		return b.String()
	}

	b.WriteString("Employees:\n")
	for _, m := range s.Members {
		fmt.Fprintf(&b, "\n  Name: %s\n", m.Name)
		fmt.Fprintf(&b, "  Role: %s\n", m.Role)
		if len(m.Responsibilities) > 0 {
			fmt.Fprintf(&b, "  Responsibilities: %s\n", strings.Join(m.Responsibilities, ", "))
		}
	}
	return b.String()
}

// BuildEmployeesInfo renders StaffInfo(employees) as text.
func BuildEmployeesInfo(employees []domain.Employee) string {
	return StaffInfo(employees).String()
}
