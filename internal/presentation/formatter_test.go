package presentation

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/zoo/internal/zoo/domain"
	"github.com/zjrosen/zoo/internal/zoo/report"
	"github.com/zjrosen/zoo/internal/zoo/store"
)

func testAnimals(t *testing.T) []domain.Animal {
	t.Helper()
	grey, err := domain.NewAnimal(domain.SpeciesWolf, "Grey")
	require.NoError(t, err)
	kiwi, err := domain.NewAnimal(domain.SpeciesParrot, "Kiwi")
	require.NoError(t, err)
	return []domain.Animal{grey, kiwi}
}

func testKinds() KindsDTO {
	return KindsDTO{
		Animals: []KindDTO{{Kind: "parrot", Label: "Parrot"}, {Kind: "wolf", Label: "Wolf"}},
		Employees: []KindDTO{
			{Kind: "vet", Label: "Veterinarian", Responsibilities: []string{"Medical examination and treatment"}},
			{Kind: "zookeeper", Label: "Zoo Keeper", Responsibilities: []string{"Feeding animals", "Enclosure cleaning"}},
		},
		Aliases: map[string]string{"veterinarian": "Vet", "keeper": "ZooKeeper"},
	}
}

func TestFormatKinds_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).FormatKinds(testKinds()))

	require.Equal(t,
		"Animal kinds:\n"+
			"  parrot  Parrot\n"+
			"  wolf    Wolf\n"+
			"\n"+
			"Employee kinds:\n"+
			"  vet        Veterinarian  Medical examination and treatment\n"+
			"  zookeeper  Zoo Keeper    Feeding animals, Enclosure cleaning\n"+
			"\n"+
			"Employee aliases: keeper -> ZooKeeper, veterinarian -> Vet\n",
		buf.String())
}

func TestFormatKinds_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, WithFormat(FormatJSON)).FormatKinds(testKinds()))

	var got KindsDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, testKinds(), got)
}

func TestTable_WideRunes(t *testing.T) {
	out := table([][]string{{"狼", "Wolf"}, {"parrot", "Parrot"}})
	require.Equal(t, "  狼      Wolf\n  parrot  Parrot\n", out)
}

func TestFormatReport_Text(t *testing.T) {
	animals := testAnimals(t)
	leo, err := domain.NewEmployee(domain.RoleZooKeeper, "Leo")
	require.NoError(t, err)

	r := Report{
		Outcomes: []Outcome{
			{Added: &store.Event{Entity: "animal", Name: "Grey", Label: "Wolf"}},
			{Skipped: &domain.UnknownKindError{Domain: "animal", Token: "dragon", Available: []string{"parrot", "wolf"}}},
			{Added: &store.Event{Entity: "employee", Name: "Leo", Label: "Zoo Keeper"}},
		},
		Sections: []Section{
			StatSection(report.Summarize(animals[:1])),
			SchedSection(report.CareDay(animals)),
			EmpsSection(report.StaffInfo([]domain.Employee{leo})),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).FormatReport(r))
	require.Equal(t,
		"✓ Added animal: Grey (Wolf)\n"+
			"Unknown animal type: dragon\n"+
			"Available types: parrot, wolf\n"+
			"✓ Added employee: Leo (Zoo Keeper)\n"+
			"\n=== Zoo statistics ===\n\n"+
			"Total animals: 1\nBy species:\n  Wolf: 1\n\n"+
			"\n=== Animal care schedule for today ===\n\n"+
			"Feeding schedule for today:\n09:00 - Grey (Wolf)\n09:30 - Kiwi (Parrot)\n\n"+
			"Medical examination schedule for today:\n11:00 - Grey (Wolf)\n11:45 - Kiwi (Parrot)\n\n"+
			"Enclosure cleaning schedule for today:\n14:00 - Grey (Wolf)\n14:30 - Kiwi (Parrot)\n\n"+
			"\n=== Zoo staff ===\nTotal employees: 1\n\nEmployees:\n\n  Name: Leo\n  Role: Zoo Keeper\n"+
			"  Responsibilities: Feeding animals, Enclosure cleaning\n\n",
		buf.String())
}

func TestFormatReport_EmptyZoo(t *testing.T) {
	r := Report{Sections: []Section{
		StatSection(report.Summarize(nil)),
		SchedSection(report.CareDay(nil)),
		ShowSection(report.SpeciesDetail("wolf", nil)),
	}}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf).FormatReport(r))
	require.Equal(t,
		EmptyZooMessage+"\n"+EmptyZooMessage+"\n"+
			"No animals of species 'wolf' found at the zoo.\n",
		buf.String())
}

func TestFormatReport_StyledStripsToPlain(t *testing.T) {
	animals := testAnimals(t)
	r := Report{
		Outcomes: []Outcome{
			{Added: &store.Event{Entity: "animal", Name: "Grey", Label: "Wolf"}},
			{Skipped: &domain.UnknownKindError{Domain: "employee", Token: "janitor", Available: []string{"vet", "zookeeper"}}},
		},
		Sections: []Section{
			StatSection(report.Summarize(animals)),
			SchedSection(report.CareDay(animals)),
			ShowSection(report.SpeciesDetail("Wolf", animals[:1])),
		},
	}

	var plain, styled bytes.Buffer
	require.NoError(t, NewFormatter(&plain).FormatReport(r))

	styles := NewStylesWithProfile(&styled, termenv.ANSI256)
	require.True(t, styles.Enabled())
	require.NoError(t, NewFormatter(&styled, WithStyles(styles)).FormatReport(r))

	require.NotEqual(t, plain.String(), styled.String())
	require.Equal(t, plain.String(), ansi.Strip(styled.String()))
}

func TestNewStyles_Disabled(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(&buf, false)
	require.False(t, s.Enabled())
	require.Equal(t, "=== Zoo staff ===", s.Heading("=== Zoo staff ==="))

	var zero Styles
	require.Equal(t, "✓", zero.Success("✓"))
}

func TestFormatReport_JSON(t *testing.T) {
	animals := testAnimals(t)
	r := Report{
		Outcomes: []Outcome{
			{Added: &store.Event{Entity: "animal", ID: "id-1", Name: "Grey", Label: "Wolf"}},
			{Skipped: &domain.UnknownKindError{Domain: "animal", Token: "dragon", Available: []string{"wolf"}}},
		},
		Sections: []Section{
			StatSection(report.Summarize(animals)),
			SchedSection(report.CareDay(animals)),
			ShowSection(report.SpeciesDetail("wolf", animals[:1])),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(&buf, WithFormat(FormatJSON)).FormatReport(r))

	var got ReportDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, []AddedDTO{{Entity: "animal", ID: "id-1", Name: "Grey", Label: "Wolf"}}, got.Added)
	require.Equal(t, []SkippedDTO{{Domain: "animal", Token: "dragon", Available: []string{"wolf"}}}, got.Skipped)
	require.NotNil(t, got.Summary)
	require.Equal(t, 2, got.Summary.Total)
	require.Len(t, got.Schedules, 3)
	require.Equal(t, "medical", got.Schedules[1].Kind)
	require.Equal(t, SlotDTO{Time: "11:45", Name: "Kiwi", Species: "Parrot"}, got.Schedules[1].Slots[1])
	require.Nil(t, got.Staff)
	require.Len(t, got.Details, 1)
	require.Equal(t, "Grey growls.", got.Details[0].Animals[0].Sound)
}

func TestFormatCare(t *testing.T) {
	leo, err := domain.NewEmployee(domain.RoleZooKeeper, "Leo")
	require.NoError(t, err)
	grey := testAnimals(t)[0]
	msg, err := leo.Feed(grey)
	require.NoError(t, err)

	dto := FromCare(leo, domain.CapFeed, grey, msg)

	var text bytes.Buffer
	require.NoError(t, NewFormatter(&text).FormatCare(dto))
	require.Equal(t, "Leo feeds Grey (Wolf).\n", text.String())

	var js bytes.Buffer
	require.NoError(t, NewFormatter(&js, WithFormat(FormatJSON)).FormatCare(dto))
	var got CareDTO
	require.NoError(t, json.Unmarshal(js.Bytes(), &got))
	require.Equal(t, CareDTO{
		Employee: "Leo", Role: "Zoo Keeper", Animal: "Grey", Species: "Wolf",
		Capability: "feed", Message: "Leo feeds Grey (Wolf).",
	}, got)
}

func TestFormatError(t *testing.T) {
	var text bytes.Buffer
	require.NoError(t, NewFormatter(&text).FormatError(errors.New("boom")))
	require.Equal(t, "boom\n", text.String())

	var js bytes.Buffer
	require.NoError(t, NewFormatter(&js, WithFormat(FormatJSON)).FormatError(errors.New("boom")))
	require.JSONEq(t, `{"error":"boom"}`, js.String())
}

func TestParseSection(t *testing.T) {
	for in, want := range map[string]SectionKind{
		"stat": SectionStat, "SCHED": SectionSched, "emps": SectionEmps,
		"employees": SectionEmps, " show ": SectionShow,
	} {
		got, err := ParseSection(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseSection("info")
	require.True(t, domain.IsInvalidEntry(err))
}
