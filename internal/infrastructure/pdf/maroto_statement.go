// Package pdf renders the agent commission statement.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: TripDesk + "Commission Statement"  │  Agent + Date │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLE: Date | Customer | Trip | Sale | Commission          │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTALS: Rate / Total sales / Total commission              │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/tripdesk/tripdesk-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 94}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoStatementGenerator implements commission.StatementPDFGenerator
// using Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator builds the generator.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatement renders the statement and returns its bytes.
func (g *MarotoStatementGenerator) GenerateStatement(
	_ context.Context,
	agentName string,
	data *dto.MyCommissionResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Commission Statement", true).
		WithAuthor("TripDesk", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(agentName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(data.Bookings) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: agency name + title on the left, agent + issue date on the right.
func headerRow(agentName string) core.Row {
	issued := time.Now().Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("TripDesk", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Commission Statement", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(agentName, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 3,
			}),
			text.New("Issued: "+issued, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Customer", 3, align.Left),
		h("Trip", 3, align.Left),
		h("Sale", 2, align.Right),
		h("Commission", 2, align.Right),
	)
}

// tableRows: one row per commissionable booking.
func tableRows(bookings []dto.MyCommissionRow) []core.Row {
	result := make([]core.Row, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				b.CreatedAt.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				b.CustomerName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				b.TripName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				b.TotalAmount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				b.Commission.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: right-aligned totals block.
func totalsRow(data *dto.MyCommissionResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Bookings:"),
			label("Total sales:"),
			grandLabel(fmt.Sprintf("COMMISSION (%s%%):", data.CommissionRate.String())),
		),
		col.New(4).Add(
			value(fmt.Sprintf("%d", data.TotalBookings)),
			value(data.TotalSales.StringFixed(2)),
			grandValue(data.TotalCommission.StringFixed(2)),
		),
		col.New(1),
	)
}
