package main

import (
	"context"
	"time"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole"
	"github.com/google/uuid"
)

type sampleRecord struct {
	Key         uuid.UUID
	ID          int
	Name        string
	Description *string
	Inserted    time.Time
	RoleIDs     []int
}

const steveDescription = "Stephen Glenn Martin (born August 14, 1945) is an American actor, comedian, writer, producer, and musician. " +
	"He has earned five Grammy Awards, a Primetime Emmy Award, and was awarded an Honorary Academy Award at the Academy's 5th Annual Governors Awards in 2013."

func sampleRecords(now time.Time) []sampleRecord {
	description := steveDescription
	return []sampleRecord{
		{Key: uuid.New(), ID: 1, Name: "Fido", Inserted: now, RoleIDs: []int{1, 2, 3}},
		{Key: uuid.New(), ID: 2, Name: "Steve", Description: &description, Inserted: now.Add(23 * time.Minute)},
		{Key: uuid.New(), ID: 3, Name: "Greg", Inserted: now.Add(-4 * time.Hour), RoleIDs: []int{3}},
	}
}

// repeatRecords copies records n times with fresh keys and ids.
func repeatRecords(records []sampleRecord, n int) []sampleRecord {
	out := make([]sampleRecord, 0, len(records)*n)
	for i := 0; i < n; i++ {
		for _, r := range records {
			r.Key = uuid.New()
			r.ID = len(out)
			out = append(out, r)
		}
	}
	return out
}

func sampleFields() []easyconsole.Field[sampleRecord] {
	return []easyconsole.Field[sampleRecord]{
		easyconsole.NewField("Id", func(r sampleRecord) any { return r.ID }),
		easyconsole.NewField("Key", func(r sampleRecord) any { return r.Key }),
		easyconsole.NewField("Name", func(r sampleRecord) any { return r.Name }),
		easyconsole.NewField("Description", func(r sampleRecord) any { return r.Description }),
		easyconsole.NewField("Inserted", func(r sampleRecord) any { return r.Inserted }),
		easyconsole.NewField("RoleIds", func(r sampleRecord) any { return r.RoleIDs }),
	}
}

type tableSettings struct {
	borderStyle    easyconsole.BorderStyle
	wordWrap       bool
	rowSeparators  bool
	maxColumnWidth int
}

type sampleTablePage struct {
	easyconsole.PageBase
	settings tableSettings
}

func newSampleTablePage(program *easyconsole.Program, settings tableSettings) *sampleTablePage {
	return &sampleTablePage{PageBase: easyconsole.NewPageBase("Table", program), settings: settings}
}

func (p *sampleTablePage) Display(ctx context.Context) error {
	p.RenderHeader()

	table, err := easyconsole.NewTable("Sample Data", sampleRecords(time.Now()), sampleFields()...)
	if err != nil {
		return err
	}
	table.BorderStyle = p.settings.borderStyle
	table.EnableWordWrap = p.settings.wordWrap
	table.EnableRowSeparators = p.settings.rowSeparators
	if p.settings.maxColumnWidth > 0 {
		table.SetMaxColumnWidth(p.settings.maxColumnWidth)
	}
	table.Render(p.Console())

	return pressEnterToGoHome(ctx, p.PageBase)
}

type sampleListPage struct {
	easyconsole.PageBase
	pageSize int
}

func newSampleListPage(program *easyconsole.Program, pageSize int) *sampleListPage {
	return &sampleListPage{PageBase: easyconsole.NewPageBase("List", program), pageSize: pageSize}
}

func (p *sampleListPage) Display(ctx context.Context) error {
	p.RenderHeader()
	c := p.Console()

	records := sampleRecords(time.Now())
	if err := easyconsole.NewDefaultList(records, sampleFields()...).Render(ctx, c); err != nil {
		return err
	}

	if _, err := c.ReadString("Press [Enter] to show a very long list"); err != nil {
		return err
	}

	long, err := easyconsole.NewList(repeatRecords(records, 2000), p.pageSize, sampleFields()...)
	if err != nil {
		return err
	}
	if err := long.Render(ctx, c); err != nil {
		return err
	}

	return pressEnterToGoHome(ctx, p.PageBase)
}
