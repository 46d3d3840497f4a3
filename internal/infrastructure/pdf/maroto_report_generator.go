// Package pdf renders movement and maintenance reports as A4 tables
// using Maroto v2.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/trackops/assettrack-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const reportDateLayout = "02/01/2006 15:04"

// MarotoReportGenerator implements report.PDFGenerator using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// MovementsPDF renders the movement rows as a table and returns the bytes.
func (g *MarotoReportGenerator) MovementsPDF(_ context.Context, rows []*entity.Movement) ([]byte, error) {
	m := newDocument("Asset Movement Report")

	m.AddRows(titleRow("ASSET MOVEMENT REPORT", len(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(movementHeaderRow())
	for _, mv := range rows {
		m.AddRows(movementDetailRow(mv))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate movement report: %w", err)
	}
	return doc.GetBytes(), nil
}

// MaintenancePDF renders the maintenance rows as a table, with a total
// cost line at the bottom, and returns the bytes.
func (g *MarotoReportGenerator) MaintenancePDF(_ context.Context, rows []*entity.Maintenance) ([]byte, error) {
	m := newDocument("Maintenance Report")

	m.AddRows(titleRow("MAINTENANCE REPORT", len(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(maintenanceHeaderRow())
	total := decimal.Zero
	for _, rec := range rows {
		m.AddRows(maintenanceDetailRow(rec))
		total = total.Add(rec.Cost)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalCostRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate maintenance report: %w", err)
	}
	return doc.GetBytes(), nil
}

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor("AssetTrack", true).
		Build()
	return maroto.New(cfg)
}

// titleRow: report title (left) and generation date + row count (right).
func titleRow(title string, count int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%d records", count), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorWhite, Top: 2, Left: 1, Right: 1,
	}))
}

func movementHeaderRow() core.Row {
	return row.New(8).Add(
		headerCol("Asset", 3, align.Left),
		headerCol("From", 2, align.Left),
		headerCol("To", 2, align.Left),
		headerCol("Type", 2, align.Center),
		headerCol("Date", 2, align.Center),
		headerCol("Ret.", 1, align.Center),
	)
}

func movementDetailRow(mv *entity.Movement) core.Row {
	returnable := "No"
	if mv.Returnable {
		returnable = "Yes"
	}
	return row.New(7).Add(
		col.New(3).Add(text.New(
			mv.AssetName,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			mv.MovementFrom,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			mv.MovementTo,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			mv.MovementType,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			mv.Date.Format(reportDateLayout),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(1).Add(text.New(
			returnable,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
	)
}

func maintenanceHeaderRow() core.Row {
	return row.New(8).Add(
		headerCol("Asset", 3, align.Left),
		headerCol("Type", 2, align.Center),
		headerCol("Scheduled", 2, align.Center),
		headerCol("Status", 2, align.Center),
		headerCol("Performed by", 2, align.Left),
		headerCol("Cost", 1, align.Right),
	)
}

func maintenanceDetailRow(rec *entity.Maintenance) core.Row {
	return row.New(7).Add(
		col.New(3).Add(text.New(
			rec.AssetName,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			rec.MaintenanceType,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			rec.ScheduledDate.Format("02/01/2006"),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			rec.Status,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			rec.PerformedBy,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(1).Add(text.New(
			"$"+rec.Cost.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

func totalCostRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(9).Add(
			text.New("TOTAL COST:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New("$"+total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
		),
	)
}
