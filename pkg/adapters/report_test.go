package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gallery-tools/exhibit-atlas/pkg/models/api"
	"github.com/gallery-tools/exhibit-atlas/pkg/models/domain"
)

func TestClassifyNote(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected domain.AnalysisNote
	}{
		{
			name:     "arrow prefix becomes arrow note",
			line:     "→ need more promo",
			expected: domain.AnalysisNote{Kind: domain.NoteArrow, Text: "need more promo"},
		},
		{
			name:     "dash prefix becomes sub bullet",
			line:     "- minor detail",
			expected: domain.AnalysisNote{Kind: domain.NoteDetail, Text: "minor detail"},
		},
		{
			name:     "plain line becomes highlight",
			line:     "headline finding",
			expected: domain.AnalysisNote{Kind: domain.NoteHighlight, Text: "headline finding"},
		},
		{
			name:     "arrow without space",
			line:     "→추가 검토 필요",
			expected: domain.AnalysisNote{Kind: domain.NoteArrow, Text: "추가 검토 필요"},
		},
		{
			name:     "surrounding whitespace is trimmed first",
			line:     "  → follow up  ",
			expected: domain.AnalysisNote{Kind: domain.NoteArrow, Text: "follow up"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyNote(tt.line))
		})
	}
}

func TestMapApiReportToDomain_Programs(t *testing.T) {
	in := api.ReportData{
		ExhibitionTitle: "하이퍼 옐로우",
		RelatedPrograms: []api.ProgramEntry{
			{Title: "Talk", Participants: "50"},
			{Title: "", Participants: "30"},
			{Title: "Tour", Participants: "25"},
		},
	}

	out := MapApiReportToDomain(in)

	assert.Len(t, out.RelatedPrograms, 2, "titleless entries are excluded")
	assert.Equal(t, "Talk", out.RelatedPrograms[0].Title)
	assert.Equal(t, "Tour", out.RelatedPrograms[1].Title)
}

func TestMapApiReportToDomain_ZeroCountsDropped(t *testing.T) {
	in := api.ReportData{
		ExhibitionTitle: "t",
		VisitorComposition: api.VisitorComposition{
			TicketType: []api.CountEntry{
				{Label: "general", Count: 10},
				{Label: "student", Count: 0},
				{Label: "invited", Count: -3},
			},
		},
	}

	out := MapApiReportToDomain(in)

	assert.Equal(t,
		[]domain.CountEntry{{Label: "general", Count: 10}},
		out.VisitorComposition.TicketType,
	)
}

func TestMapApiReportToDomain_ReviewBuckets(t *testing.T) {
	in := api.ReportData{
		ExhibitionTitle: "t",
		VisitorReviews: []api.VisitorReview{
			{Category: "긍정", Content: "좋았다", Source: "방명록"},
			{Category: "긍정적", Content: "인상적", Source: "SNS"},
			{Category: "부정", Content: "아쉬움", Source: "방명록"},
			{Category: "건의", Content: "영문 안내 필요", Source: "SNS"},
			{Category: "불만", Content: "동선이 불편", Source: "방명록"},
			{Category: "기타", Content: "무관한 분류", Source: ""},
			{Category: "긍정", Content: "   ", Source: "빈 내용"},
		},
	}

	out := MapApiReportToDomain(in)

	assert.Len(t, out.VisitorReviews, 5, "unknown categories and empty content are dropped")

	var positive, negative int
	for _, r := range out.VisitorReviews {
		switch r.Bucket {
		case domain.ReviewPositive:
			positive++
		case domain.ReviewNegative:
			negative++
		}
	}
	assert.Equal(t, 2, positive)
	assert.Equal(t, 3, negative, "suggestions and complaints fold into the negative bucket")
}

func TestMapApiReportToDomain_ExcludedEntries(t *testing.T) {
	in := api.ReportData{
		ExhibitionTitle: "t",
		PrintedMaterials: []api.PrintedMaterial{
			{Type: "리플렛", Quantity: "5,000부"},
			{Type: "", Quantity: "200부"},
		},
		Budget: api.Budget{
			Details: []api.BudgetDetailItem{
				{Category: "전시비", Subcategory: "설치비", Amount: "28,000,000"},
				{Category: "전시비", Subcategory: "", Detail: "", Amount: "1"},
			},
			ChartData: []api.BudgetChartEntry{
				{Category: "전시 사업비", Planned: 125200000, Actual: 130773012},
				{Category: "빈 항목", Planned: 0, Actual: 0},
			},
		},
	}

	out := MapApiReportToDomain(in)

	assert.Len(t, out.PrintedMaterials, 1)
	assert.Len(t, out.Budget.Details, 1)
	assert.Len(t, out.Budget.ChartData, 1)
}

func TestMapDomainReportToExport_StripsImagePaths(t *testing.T) {
	data := MapApiReportToDomain(api.ReportData{
		ExhibitionTitle: "t",
		PosterImage:     "/tmp/poster.png",
		Rooms: []api.Room{
			{Name: "1전시실", Artists: []string{"a"}, FloorPlan: "/tmp/plan.png", Photos: []string{"/tmp/p1.png"}},
		},
		ProgramPhotos:   []string{"/tmp/prog.png"},
		MaterialPhotos:  []string{"/tmp/mat.png"},
		PromotionPhotos: []string{"/tmp/promo.png"},
		ImaOn:           api.ImaOn{Title: "IMA Critics", Content: "리뷰", Photos: []string{"/tmp/ima.png"}},
	})

	export := MapDomainReportToExport(data)

	assert.Empty(t, export.PosterImage)
	assert.Empty(t, export.ProgramPhotos)
	assert.Empty(t, export.MaterialPhotos)
	assert.Empty(t, export.PromotionPhotos)
	assert.Empty(t, export.ImaOn.Photos)
	assert.Equal(t, "리뷰", export.ImaOn.Content)
	assert.Len(t, export.Rooms, 1)
	assert.Empty(t, export.Rooms[0].FloorPlan)
	assert.Empty(t, export.Rooms[0].Photos)
	assert.Equal(t, []string{"a"}, export.Rooms[0].Artists)
}

func TestExportNotesRoundTrip(t *testing.T) {
	original := []string{"headline", "→ arrow item", "- detail item"}

	data := MapApiReportToDomain(api.ReportData{
		ExhibitionTitle: "t",
		VisitorComposition: api.VisitorComposition{
			TicketAnalysis: original,
		},
	})
	export := MapDomainReportToExport(data)

	reimported := MapApiReportToDomain(api.ReportData{
		ExhibitionTitle: "t",
		VisitorComposition: api.VisitorComposition{
			TicketAnalysis: export.VisitorComposition.TicketAnalysis,
		},
	})

	assert.Equal(t,
		data.VisitorComposition.TicketAnalysis,
		reimported.VisitorComposition.TicketAnalysis,
		"exported prefixes classify identically on re-import",
	)
}
