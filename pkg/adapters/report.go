package adapters

import (
	"strings"

	"github.com/gallery-tools/exhibit-atlas/pkg/models/api"
	"github.com/gallery-tools/exhibit-atlas/pkg/models/domain"
)

// Review categories understood by the template. Suggestions and complaints
// fold into the negative bucket; anything outside the closed set is dropped.
var (
	positiveReviewLabels = map[string]struct{}{
		"긍정": {}, "긍정적": {},
	}
	negativeReviewLabels = map[string]struct{}{
		"부정": {}, "부정적": {}, "건의": {}, "불만": {},
	}
)

// MapApiReportToDomain normalizes the wire model into the render-ready domain
// model: strings are trimmed, entries the template excludes are dropped here,
// analysis lines and reviews are classified once.
func MapApiReportToDomain(in api.ReportData) domain.ReportData {
	return domain.ReportData{
		ExhibitionTitle: strings.TrimSpace(in.ExhibitionTitle),
		PosterImage:     strings.TrimSpace(in.PosterImage),

		Overview:  mapOverview(in.Overview),
		ThemeText: strings.TrimSpace(in.ThemeText),

		Rooms:            mapRooms(in.Rooms),
		RelatedPrograms:  mapPrograms(in.RelatedPrograms),
		ProgramPhotos:    cleanStrings(in.ProgramPhotos),
		Staff:            mapStaff(in.Staff),
		PrintedMaterials: mapMaterials(in.PrintedMaterials),
		MaterialPhotos:   cleanStrings(in.MaterialPhotos),

		Budget:             mapBudget(in.Budget),
		Revenue:            mapRevenue(in.Revenue),
		VisitorComposition: mapComposition(in.VisitorComposition),

		Promotion: domain.Promotion{
			Advertising:   strings.TrimSpace(in.Promotion.Advertising),
			PressRelease:  strings.TrimSpace(in.Promotion.PressRelease),
			WebInvitation: strings.TrimSpace(in.Promotion.WebInvitation),
			Newsletter:    strings.TrimSpace(in.Promotion.Newsletter),
			SNS:           strings.TrimSpace(in.Promotion.SNS),
			Other:         strings.TrimSpace(in.Promotion.Other),
		},
		PromotionPhotos: cleanStrings(in.PromotionPhotos),
		PressCoverage: domain.PressCoverage{
			PrintMedia:  mapPress(in.PressCoverage.PrintMedia),
			OnlineMedia: mapPress(in.PressCoverage.OnlineMedia),
		},
		Membership: strings.TrimSpace(in.Membership),
		ImaOn: domain.ImaOn{
			Title:   strings.TrimSpace(in.ImaOn.Title),
			Content: strings.TrimSpace(in.ImaOn.Content),
			Photos:  cleanStrings(in.ImaOn.Photos),
		},

		Evaluation: domain.Evaluation{
			Positive:     cleanStrings(in.Evaluation.Positive),
			Negative:     cleanStrings(in.Evaluation.Negative),
			Improvements: cleanStrings(in.Evaluation.Improvements),
		},
		VisitorReviews: mapReviews(in.VisitorReviews),
	}
}

func mapOverview(in api.Overview) domain.Overview {
	return domain.Overview{
		Title:           strings.TrimSpace(in.Title),
		Period:          strings.TrimSpace(in.Period),
		Artists:         cleanStrings(in.Artists),
		ChiefCurator:    strings.TrimSpace(in.ChiefCurator),
		Curators:        strings.TrimSpace(in.Curators),
		Coordinators:    strings.TrimSpace(in.Coordinators),
		CuratorialTeam:  strings.TrimSpace(in.CuratorialTeam),
		PR:              strings.TrimSpace(in.PR),
		Sponsors:        strings.TrimSpace(in.Sponsors),
		TotalBudget:     strings.TrimSpace(in.TotalBudget),
		BudgetBreakdown: cleanStrings(in.BudgetBreakdown),
		TotalRevenue:    strings.TrimSpace(in.TotalRevenue),
		Programs:        strings.TrimSpace(in.Programs),
		StaffCount:      strings.TrimSpace(in.StaffCount),
		Visitors:        strings.TrimSpace(in.Visitors),
	}
}

func mapRooms(in []api.Room) []domain.Room {
	rooms := make([]domain.Room, 0, len(in))
	for _, r := range in {
		rooms = append(rooms, domain.Room{
			Name:      strings.TrimSpace(r.Name),
			Artists:   cleanStrings(r.Artists),
			FloorPlan: strings.TrimSpace(r.FloorPlan),
			Photos:    cleanStrings(r.Photos),
		})
	}
	return rooms
}

// mapPrograms drops entries without a title; they carry no renderable row and
// must not contribute to the participant aggregate.
func mapPrograms(in []api.ProgramEntry) []domain.ProgramEntry {
	var programs []domain.ProgramEntry
	for _, p := range in {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			continue
		}
		programs = append(programs, domain.ProgramEntry{
			Category:     strings.TrimSpace(p.Category),
			Title:        title,
			Date:         strings.TrimSpace(p.Date),
			Participants: strings.TrimSpace(p.Participants),
			Note:         strings.TrimSpace(p.Note),
		})
	}
	return programs
}

func mapStaff(in api.Staff) domain.Staff {
	group := func(g api.StaffGroup) domain.StaffGroup {
		return domain.StaffGroup{
			Count: strings.TrimSpace(g.Count),
			Role:  strings.TrimSpace(g.Role),
		}
	}
	return domain.Staff{
		MainStaff:   group(in.MainStaff),
		Volunteers:  group(in.Volunteers),
		SupportTeam: group(in.SupportTeam),
	}
}

func mapMaterials(in []api.PrintedMaterial) []domain.PrintedMaterial {
	var materials []domain.PrintedMaterial
	for _, m := range in {
		t := strings.TrimSpace(m.Type)
		if t == "" {
			continue
		}
		materials = append(materials, domain.PrintedMaterial{
			Type:     t,
			Quantity: strings.TrimSpace(m.Quantity),
		})
	}
	return materials
}

func mapBudget(in api.Budget) domain.Budget {
	var summary []domain.BudgetSummaryItem
	for _, s := range in.Summary {
		item := domain.BudgetSummaryItem{
			Category: strings.TrimSpace(s.Category),
			Planned:  strings.TrimSpace(s.Planned),
			Actual:   strings.TrimSpace(s.Actual),
			Note:     strings.TrimSpace(s.Note),
		}
		if item.Category == "" && item.Planned == "" && item.Actual == "" && item.Note == "" {
			continue
		}
		summary = append(summary, item)
	}

	var chartData []domain.BudgetChartEntry
	for _, c := range in.ChartData {
		planned, actual := max(c.Planned, 0), max(c.Actual, 0)
		if planned == 0 && actual == 0 {
			continue
		}
		chartData = append(chartData, domain.BudgetChartEntry{
			Category: strings.TrimSpace(c.Category),
			Planned:  planned,
			Actual:   actual,
		})
	}

	var details []domain.BudgetDetailItem
	for _, d := range in.Details {
		item := domain.BudgetDetailItem{
			Category:    strings.TrimSpace(d.Category),
			Subcategory: strings.TrimSpace(d.Subcategory),
			Detail:      strings.TrimSpace(d.Detail),
			Amount:      strings.TrimSpace(d.Amount),
			Note:        strings.TrimSpace(d.Note),
		}
		if item.Subcategory == "" && item.Detail == "" {
			continue
		}
		details = append(details, item)
	}

	return domain.Budget{
		TotalSpent:     strings.TrimSpace(in.TotalSpent),
		BreakdownNotes: cleanStrings(in.BreakdownNotes),
		Summary:        summary,
		ArrowNotes:     cleanStrings(in.ArrowNotes),
		ChartData:      chartData,
		Details:        details,
	}
}

func mapRevenue(in api.Revenue) domain.Revenue {
	return domain.Revenue{
		TotalVisitors:      strings.TrimSpace(in.TotalVisitors),
		DailyAverage:       strings.TrimSpace(in.DailyAverage),
		VisitorNotes:       cleanStrings(in.VisitorNotes),
		TotalRevenue:       strings.TrimSpace(in.TotalRevenue),
		TicketRevenue:      strings.TrimSpace(in.TicketRevenue),
		PartnershipRevenue: strings.TrimSpace(in.PartnershipRevenue),
		RevenueNotes:       cleanStrings(in.RevenueNotes),
	}
}

func mapComposition(in api.VisitorComposition) domain.VisitorComposition {
	return domain.VisitorComposition{
		Note:           strings.TrimSpace(in.Note),
		TicketType:     mapCounts(in.TicketType),
		TicketAnalysis: classifyNotes(in.TicketAnalysis),
		VisitorType:    mapCounts(in.VisitorType),
		WeeklyVisitors: mapCounts(in.WeeklyVisitors),
		Analysis:       strings.TrimSpace(in.Analysis),
	}
}

// mapCounts keeps entry order and drops zero or negative counts; the chart
// renderer must never see them.
func mapCounts(in []api.CountEntry) []domain.CountEntry {
	var entries []domain.CountEntry
	for _, e := range in {
		if e.Count <= 0 {
			continue
		}
		entries = append(entries, domain.CountEntry{
			Label: strings.TrimSpace(e.Label),
			Count: e.Count,
		})
	}
	return entries
}

// ClassifyNote resolves one analysis line into its render class. The leading
// character decides: "→" is an arrow call-out, "-" a sub-bullet, anything
// else an emphasized highlight. The prefix is stripped from the text.
func ClassifyNote(line string) domain.AnalysisNote {
	line = strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, "→"):
		return domain.AnalysisNote{
			Kind: domain.NoteArrow,
			Text: strings.TrimSpace(strings.TrimPrefix(line, "→")),
		}
	case strings.HasPrefix(line, "-"):
		return domain.AnalysisNote{
			Kind: domain.NoteDetail,
			Text: strings.TrimSpace(strings.TrimPrefix(line, "-")),
		}
	default:
		return domain.AnalysisNote{Kind: domain.NoteHighlight, Text: line}
	}
}

func classifyNotes(lines []string) []domain.AnalysisNote {
	var notes []domain.AnalysisNote
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		notes = append(notes, ClassifyNote(line))
	}
	return notes
}

func mapPress(in []api.PressEntry) []domain.PressEntry {
	var entries []domain.PressEntry
	for _, e := range in {
		entry := domain.PressEntry{
			Outlet: strings.TrimSpace(e.Outlet),
			Date:   strings.TrimSpace(e.Date),
			Title:  strings.TrimSpace(e.Title),
			Note:   strings.TrimSpace(e.Note),
			URL:    strings.TrimSpace(e.URL),
		}
		if entry.Outlet == "" && entry.Date == "" && entry.Title == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func mapReviews(in []api.VisitorReview) []domain.VisitorReview {
	var reviews []domain.VisitorReview
	for _, r := range in {
		content := strings.TrimSpace(r.Content)
		if content == "" {
			continue
		}
		category := strings.TrimSpace(r.Category)
		bucket, ok := bucketForCategory(category)
		if !ok {
			continue
		}
		reviews = append(reviews, domain.VisitorReview{
			Bucket:   bucket,
			Category: category,
			Content:  content,
			Source:   strings.TrimSpace(r.Source),
		})
	}
	return reviews
}

func bucketForCategory(category string) (domain.ReviewBucket, bool) {
	if _, ok := positiveReviewLabels[category]; ok {
		return domain.ReviewPositive, true
	}
	if _, ok := negativeReviewLabels[category]; ok {
		return domain.ReviewNegative, true
	}
	return 0, false
}

func cleanStrings(in []string) []string {
	var out []string
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
