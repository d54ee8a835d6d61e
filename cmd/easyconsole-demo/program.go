package main

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/easyconsole/internal/config"
	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole"
)

const (
	mainPageID        easyconsole.PageID = "main"
	page1ID           easyconsole.PageID = "page-1"
	page1AID          easyconsole.PageID = "page-1a"
	page1AiID         easyconsole.PageID = "page-1ai"
	page1BID          easyconsole.PageID = "page-1b"
	page2ID           easyconsole.PageID = "page-2"
	inputPageID       easyconsole.PageID = "input"
	sampleTablePageID easyconsole.PageID = "sample-table"
	sampleListPageID  easyconsole.PageID = "sample-list"
)

func navigateTo(program *easyconsole.Program, id easyconsole.PageID) easyconsole.Action {
	return func(ctx context.Context) error {
		return program.NavigateTo(ctx, id)
	}
}

func newDemoProgram(c *easyconsole.Console, cfg config.Config) (*easyconsole.Program, error) {
	program := easyconsole.NewProgram(c, cfg.Program.Title, easyconsole.ProgramOptions{
		Breadcrumb: cfg.Program.Breadcrumb,
	})

	borderStyle, err := easyconsole.ParseBorderStyle(cfg.Table.BorderStyle)
	if err != nil {
		return nil, fmt.Errorf("table.border_style: %w", err)
	}

	program.AddPage(mainPageID, easyconsole.NewMenuPage("Main Page", program,
		easyconsole.NewOption("Page 1", navigateTo(program, page1ID)),
		easyconsole.NewOption("Page 2", navigateTo(program, page2ID)),
		easyconsole.NewOption("Input", navigateTo(program, inputPageID)),
		easyconsole.NewOption("Sample Table", navigateTo(program, sampleTablePageID)),
		easyconsole.NewOption("Sample List", navigateTo(program, sampleListPageID)),
	))
	program.AddPage(page1ID, easyconsole.NewMenuPage("Page 1", program,
		easyconsole.NewOption("Page 1A", navigateTo(program, page1AID)),
		easyconsole.NewOption("Page 1B", navigateTo(program, page1BID)),
	))
	program.AddPage(page1AID, easyconsole.NewMenuPage("Page 1A", program,
		easyconsole.NewOption("Page 1Ai", navigateTo(program, page1AiID)),
	))
	program.AddPage(page1AiID, newGreetingPage("Page 1Ai", program))
	program.AddPage(page1BID, newGreetingPage("Page 1B", program))
	program.AddPage(page2ID, newChoresPage(program))
	program.AddPage(inputPageID, newInputPage(program))
	program.AddPage(sampleTablePageID, newSampleTablePage(program, tableSettings{
		borderStyle:    borderStyle,
		wordWrap:       cfg.Table.WordWrap,
		rowSeparators:  cfg.Table.RowSeparators,
		maxColumnWidth: cfg.Table.MaxColumnWidth,
	}))
	program.AddPage(sampleListPageID, newSampleListPage(program, cfg.Table.ListPageSize))

	if _, err := program.SetPage(mainPageID); err != nil {
		return nil, err
	}
	return program, nil
}
