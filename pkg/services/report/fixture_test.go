package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gallery-tools/exhibit-atlas/pkg/adapters"
	"github.com/gallery-tools/exhibit-atlas/pkg/doc"
	"github.com/gallery-tools/exhibit-atlas/pkg/models/api"
	"github.com/gallery-tools/exhibit-atlas/pkg/models/domain"
	"github.com/gallery-tools/exhibit-atlas/pkg/services/artifacts"
)

// sampleReportData builds a representative fully-populated report, the kind
// the data-collection front end submits for a finished exhibition.
func sampleReportData() domain.ReportData {
	return adapters.MapApiReportToDomain(api.ReportData{
		ExhibitionTitle: "하이퍼 옐로우",
		Overview: api.Overview{
			Title:        "하이퍼 옐로우",
			Period:       "2025. 4. 24.(목) ~ 7. 13.(일)",
			Artists:      []string{"김작가", "이작가", "박작가"},
			ChiefCurator: "최책임",
			Curators:     "정기획",
			TotalBudget:  "142,438,012원",
			BudgetBreakdown: []string{
				"전시 사업비 130,773,012원",
				"운영비 11,665,000원",
			},
			TotalRevenue: "21,544,000원",
			Programs:     "총 2개 프로그램",
			Visitors:     "7,009명",
		},
		ThemeText: "동시대 색채 실험을 조명하는 전시.\n\n두 번째 문단.",
		Rooms: []api.Room{
			{Name: "1전시실", Artists: []string{"김작가"}},
			{Name: "2전시실", Artists: []string{"이작가", "박작가"}},
		},
		RelatedPrograms: []api.ProgramEntry{
			{Category: "토크", Title: "작가와의 대화", Date: "2025. 5. 10.", Participants: "50명"},
			{Category: "투어", Title: "큐레이터 투어", Date: "2025. 6. 14.", Participants: "25명"},
		},
		Staff: api.Staff{
			MainStaff:  api.StaffGroup{Count: "4명", Role: "전시장 운영 및 안내"},
			Volunteers: api.StaffGroup{Count: "12명", Role: "관람 지원"},
		},
		PrintedMaterials: []api.PrintedMaterial{
			{Type: "리플렛", Quantity: "5,000부"},
			{Type: "포스터", Quantity: "300부"},
		},
		Budget: api.Budget{
			TotalSpent: "142,438,012원",
			Summary: []api.BudgetSummaryItem{
				{Category: "전시 사업비", Planned: "125,200,000", Actual: "130,773,012", Note: "104.5%"},
				{Category: "운영비", Planned: "17,238,012", Actual: "11,665,000", Note: "67.7%"},
			},
			ArrowNotes: []string{"설치 비용 증가로 사업비 초과 집행"},
			ChartData: []api.BudgetChartEntry{
				{Category: "전시 사업비", Planned: 125200000, Actual: 130773012},
				{Category: "운영비", Planned: 17238012, Actual: 11665000},
			},
			Details: []api.BudgetDetailItem{
				{Category: "전시 사업비", Subcategory: "설치비", Detail: "공간 조성", Amount: "28,000,000"},
			},
		},
		Revenue: api.Revenue{
			TotalVisitors: "7,009명",
			DailyAverage:  "102명",
			TotalRevenue:  "21,544,000원",
			TicketRevenue: "19,544,000원",
		},
		VisitorComposition: api.VisitorComposition{
			Note: "무료 초대 관객 포함",
			TicketType: []api.CountEntry{
				{Label: "성인", Count: 4200},
				{Label: "청소년", Count: 1800},
				{Label: "초대", Count: 1009},
			},
			TicketAnalysis: []string{
				"성인 관객이 전체의 60%를 차지",
				"→ 청소년 대상 홍보 강화 필요",
			},
			VisitorType: []api.CountEntry{
				{Label: "개인", Count: 6200},
				{Label: "단체", Count: 809},
			},
			WeeklyVisitors: []api.CountEntry{
				{Label: "1주", Count: 1200},
				{Label: "2주", Count: 980},
			},
		},
		Promotion: api.Promotion{
			PressRelease: "보도자료 3회 배포",
			SNS:          "인스타그램 게시물 35회",
		},
		PressCoverage: api.PressCoverage{
			PrintMedia: []api.PressEntry{
				{Outlet: "일간미술", Date: "2025. 5. 2.", Title: "색의 실험실"},
			},
			OnlineMedia: []api.PressEntry{
				{Outlet: "아트뉴스", Date: "2025. 5. 8.", Title: "하이퍼 옐로우 리뷰", URL: "https://example.com/review"},
			},
		},
		Membership: "멤버십 회원 대상 프리뷰 1회 진행",
		ImaOn:      api.ImaOn{Content: "온라인 비평 2편 게재"},
		Evaluation: api.Evaluation{
			Positive:     []string{"관객 호응도 높음"},
			Negative:     []string{"평일 관객 유입 저조"},
			Improvements: []string{"평일 프로그램 확대"},
		},
		VisitorReviews: []api.VisitorReview{
			{Category: "긍정", Content: "색채 구성이 인상적", Source: "방명록"},
			{Category: "건의", Content: "영문 안내가 필요", Source: "SNS"},
		},
	})
}

func TestAssembleSampleStructure(t *testing.T) {
	renderer := &fakeRenderer{dir: t.TempDir()}
	asm := NewAssembler(renderer, artifacts.NewManager(t.TempDir()))

	document, err := asm.Assemble(context.Background(), sampleReportData())
	require.NoError(t, err)

	// Section order and page-break placement: I and II share a page, every
	// following top-level section starts on a new one.
	type mark struct {
		label string
		pos   int
	}
	var sections []mark
	var breaks []int
	for i, cmd := range document.Commands {
		switch c := cmd.(type) {
		case doc.Heading:
			if c.Level == 1 {
				sections = append(sections, mark{c.Label, i})
			}
		case doc.PageBreak:
			breaks = append(breaks, i)
		}
	}

	require.Len(t, sections, 6)
	for i, expected := range []string{"I", "II", "III", "IV", "V", "VI"} {
		assert.Equal(t, expected, sections[i].label)
	}

	breakBetween := func(from, to int) bool {
		for _, b := range breaks {
			if b > sections[from].pos && b < sections[to].pos {
				return true
			}
		}
		return false
	}
	assert.False(t, breakBetween(0, 1), "theme follows the overview on the same page")
	for i := 1; i < 5; i++ {
		assert.True(t, breakBetween(i, i+1), "section %s starts a new page", sections[i+1].label)
	}

	// The document closes with the sign-off paragraph.
	last, ok := document.Commands[len(document.Commands)-1].(doc.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "끝.", last.Text)

	// Both pies, the weekly bars and the budget comparison are rendered.
	assert.Len(t, renderer.pieSeries, 2)
	assert.Len(t, renderer.barSeries, 1)
	assert.Equal(t, 1, renderer.comparisonCalls)

	images := commandsOf[doc.Image](document)
	assert.Len(t, images, 4, "every rendered chart is placed")
}

func TestAssembleSampleProgramSuffix(t *testing.T) {
	renderer := &fakeRenderer{dir: t.TempDir()}
	document := assemble(t, renderer, sampleReportData())

	var found bool
	for _, h := range headingsAt(document, 2) {
		if h.Title == "전시 연계 프로그램" {
			assert.Equal(t, " - 총 2개 프로그램 진행, 75명 참여", h.Suffix)
			found = true
		}
	}
	assert.True(t, found)
}
