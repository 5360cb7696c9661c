package adapters

import (
	"github.com/gallery-tools/exhibit-atlas/pkg/models/api"
	"github.com/gallery-tools/exhibit-atlas/pkg/models/domain"
)

// MapDomainReportToExport projects a resolved report back onto the wire
// schema with every filesystem image path stripped. Images are staged files
// on the generating host and cannot round-trip through a JSON export.
func MapDomainReportToExport(in domain.ReportData) api.ReportData {
	return api.ReportData{
		ExhibitionTitle: in.ExhibitionTitle,

		Overview:  exportOverview(in.Overview),
		ThemeText: in.ThemeText,

		Rooms:            exportRooms(in.Rooms),
		RelatedPrograms:  exportPrograms(in.RelatedPrograms),
		Staff:            exportStaff(in.Staff),
		PrintedMaterials: exportMaterials(in.PrintedMaterials),

		Budget:             exportBudget(in.Budget),
		Revenue:            exportRevenue(in.Revenue),
		VisitorComposition: exportComposition(in.VisitorComposition),

		Promotion: api.Promotion{
			Advertising:   in.Promotion.Advertising,
			PressRelease:  in.Promotion.PressRelease,
			WebInvitation: in.Promotion.WebInvitation,
			Newsletter:    in.Promotion.Newsletter,
			SNS:           in.Promotion.SNS,
			Other:         in.Promotion.Other,
		},
		PressCoverage: api.PressCoverage{
			PrintMedia:  exportPress(in.PressCoverage.PrintMedia),
			OnlineMedia: exportPress(in.PressCoverage.OnlineMedia),
		},
		Membership: in.Membership,
		ImaOn: api.ImaOn{
			Title:   in.ImaOn.Title,
			Content: in.ImaOn.Content,
		},

		Evaluation: api.Evaluation{
			Positive:     in.Evaluation.Positive,
			Negative:     in.Evaluation.Negative,
			Improvements: in.Evaluation.Improvements,
		},
		VisitorReviews: exportReviews(in.VisitorReviews),
	}
}

func exportOverview(in domain.Overview) api.Overview {
	return api.Overview{
		Title:           in.Title,
		Period:          in.Period,
		Artists:         in.Artists,
		ChiefCurator:    in.ChiefCurator,
		Curators:        in.Curators,
		Coordinators:    in.Coordinators,
		CuratorialTeam:  in.CuratorialTeam,
		PR:              in.PR,
		Sponsors:        in.Sponsors,
		TotalBudget:     in.TotalBudget,
		BudgetBreakdown: in.BudgetBreakdown,
		TotalRevenue:    in.TotalRevenue,
		Programs:        in.Programs,
		StaffCount:      in.StaffCount,
		Visitors:        in.Visitors,
	}
}

func exportRooms(in []domain.Room) []api.Room {
	var rooms []api.Room
	for _, r := range in {
		rooms = append(rooms, api.Room{Name: r.Name, Artists: r.Artists})
	}
	return rooms
}

func exportPrograms(in []domain.ProgramEntry) []api.ProgramEntry {
	var programs []api.ProgramEntry
	for _, p := range in {
		programs = append(programs, api.ProgramEntry{
			Category:     p.Category,
			Title:        p.Title,
			Date:         p.Date,
			Participants: p.Participants,
			Note:         p.Note,
		})
	}
	return programs
}

func exportStaff(in domain.Staff) api.Staff {
	group := func(g domain.StaffGroup) api.StaffGroup {
		return api.StaffGroup{Count: g.Count, Role: g.Role}
	}
	return api.Staff{
		MainStaff:   group(in.MainStaff),
		Volunteers:  group(in.Volunteers),
		SupportTeam: group(in.SupportTeam),
	}
}

func exportMaterials(in []domain.PrintedMaterial) []api.PrintedMaterial {
	var materials []api.PrintedMaterial
	for _, m := range in {
		materials = append(materials, api.PrintedMaterial{Type: m.Type, Quantity: m.Quantity})
	}
	return materials
}

func exportBudget(in domain.Budget) api.Budget {
	var summary []api.BudgetSummaryItem
	for _, s := range in.Summary {
		summary = append(summary, api.BudgetSummaryItem{
			Category: s.Category, Planned: s.Planned, Actual: s.Actual, Note: s.Note,
		})
	}
	var chartData []api.BudgetChartEntry
	for _, c := range in.ChartData {
		chartData = append(chartData, api.BudgetChartEntry{
			Category: c.Category, Planned: c.Planned, Actual: c.Actual,
		})
	}
	var details []api.BudgetDetailItem
	for _, d := range in.Details {
		details = append(details, api.BudgetDetailItem{
			Category: d.Category, Subcategory: d.Subcategory,
			Detail: d.Detail, Amount: d.Amount, Note: d.Note,
		})
	}
	return api.Budget{
		TotalSpent:     in.TotalSpent,
		BreakdownNotes: in.BreakdownNotes,
		Summary:        summary,
		ArrowNotes:     in.ArrowNotes,
		ChartData:      chartData,
		Details:        details,
	}
}

func exportRevenue(in domain.Revenue) api.Revenue {
	return api.Revenue{
		TotalVisitors:      in.TotalVisitors,
		DailyAverage:       in.DailyAverage,
		VisitorNotes:       in.VisitorNotes,
		TotalRevenue:       in.TotalRevenue,
		TicketRevenue:      in.TicketRevenue,
		PartnershipRevenue: in.PartnershipRevenue,
		RevenueNotes:       in.RevenueNotes,
	}
}

func exportComposition(in domain.VisitorComposition) api.VisitorComposition {
	return api.VisitorComposition{
		Note:           in.Note,
		TicketType:     exportCounts(in.TicketType),
		TicketAnalysis: exportNotes(in.TicketAnalysis),
		VisitorType:    exportCounts(in.VisitorType),
		WeeklyVisitors: exportCounts(in.WeeklyVisitors),
		Analysis:       in.Analysis,
	}
}

func exportCounts(in []domain.CountEntry) []api.CountEntry {
	var entries []api.CountEntry
	for _, e := range in {
		entries = append(entries, api.CountEntry{Label: e.Label, Count: e.Count})
	}
	return entries
}

// exportNotes re-applies the render-class prefixes so a later import
// classifies the lines the same way.
func exportNotes(in []domain.AnalysisNote) []string {
	var lines []string
	for _, n := range in {
		switch n.Kind {
		case domain.NoteArrow:
			lines = append(lines, "→ "+n.Text)
		case domain.NoteDetail:
			lines = append(lines, "- "+n.Text)
		default:
			lines = append(lines, n.Text)
		}
	}
	return lines
}

func exportPress(in []domain.PressEntry) []api.PressEntry {
	var entries []api.PressEntry
	for _, e := range in {
		entries = append(entries, api.PressEntry{
			Outlet: e.Outlet, Date: e.Date, Title: e.Title, Note: e.Note, URL: e.URL,
		})
	}
	return entries
}

func exportReviews(in []domain.VisitorReview) []api.VisitorReview {
	var reviews []api.VisitorReview
	for _, r := range in {
		reviews = append(reviews, api.VisitorReview{
			Category: r.Category, Content: r.Content, Source: r.Source,
		})
	}
	return reviews
}
