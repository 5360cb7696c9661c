package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gallery-tools/exhibit-atlas/pkg/doc"
	"github.com/gallery-tools/exhibit-atlas/pkg/models/domain"
	"github.com/gallery-tools/exhibit-atlas/pkg/services/artifacts"
)

// Fixed template strings. The heading hierarchy, labels and table columns
// reproduce the institutional report format exactly; they are not
// configurable.
var tocItems = []string{
	"I. 전시 개요",
	"II. 전시 주제와 내용",
	"III. 전시 구성",
	"IV. 전시 결과",
	"V. 홍보 방식 및 언론 보도",
	"VI. 평가 및 개선 방안",
}

var promotionLabels = []string{"광고", "보도자료", "웹 초청장", "뉴스레터", "SNS", "그 외"}

// ChartRenderer is the rendering boundary consumed by the assembler. Series
// reach it in entry order with zero-valued entries already removed.
type ChartRenderer interface {
	RenderPie(entries []domain.CountEntry, title string) (string, error)
	RenderBars(entries []domain.CountEntry) (string, error)
	RenderComparison(categories []string, planned, actual []int) (string, error)
}

// Assembler walks one ReportData in fixed section order and emits layout
// commands. An Assembler serves a single generation; it owns no shared state.
type Assembler struct {
	b      *doc.Builder
	charts *chartAdapter
}

func NewAssembler(renderer ChartRenderer, mgr *artifacts.Manager) *Assembler {
	return &Assembler{
		b:      doc.NewBuilder(),
		charts: &chartAdapter{renderer: renderer, mgr: mgr},
	}
}

// Assemble produces the full command stream for the report. Sections are
// independent of each other's output; each renders from the shared data and
// appends to the same document cursor.
func (a *Assembler) Assemble(ctx context.Context, data domain.ReportData) (*doc.Document, error) {
	logger := zerolog.Ctx(ctx)

	a.b.PageNumberFooter()
	a.coverPage(data)
	a.b.PageBreak()

	a.sectionOverview(data)
	// The theme essay follows the overview directly, without a page break.
	a.sectionTheme(data)
	a.b.PageBreak()

	if err := a.sectionComposition(data); err != nil {
		return nil, err
	}
	a.b.PageBreak()

	if err := a.sectionResults(data); err != nil {
		return nil, err
	}
	a.b.PageBreak()

	a.sectionPromotion(data)
	a.b.PageBreak()

	a.sectionEvaluation(data)

	a.b.BlankLine()
	a.b.Paragraph(doc.Paragraph{Text: "끝.", Size: doc.SizeBody})

	logger.Debug().Int("commands", len(a.b.Document().Commands)).Msg("report assembled")
	return a.b.Document(), nil
}

// ── Cover / table of contents ──

func (a *Assembler) coverPage(data domain.ReportData) {
	a.b.Paragraph(doc.Paragraph{
		Text:  fmt.Sprintf("전시보고서 - 《%s》", data.ExhibitionTitle),
		Size:  doc.SizeTocTitle,
		Bold:  true,
		Align: doc.AlignCenter,
	})
	a.b.Rule()

	for _, item := range tocItems {
		a.b.Paragraph(doc.Paragraph{Text: item, Size: doc.SizeTocItem, Bold: true})
		a.b.Rule()
	}

	if data.PosterImage != "" {
		a.b.BlankLine()
		a.b.Image(data.PosterImage, doc.WidthPoster, false)
	}
}

// ── I. 전시 개요 ──

// bulletRow is one conditional overview line: rendered only when its value is
// present, optionally emphasized, optionally followed by sub-bullets.
type bulletRow struct {
	label      string
	value      string
	emphasized bool
	subItems   []string
}

func (a *Assembler) sectionOverview(data domain.ReportData) {
	a.b.Heading(1, doc.Roman(1), "전시 개요")

	ov := data.Overview
	rows := []bulletRow{
		{label: "전시 제목", value: quoteTitle(ov.Title)},
		{label: "전시 기간", value: ov.Period},
		{label: "참여 작가", value: strings.Join(ov.Artists, ", ")},
		{label: "책임기획", value: ov.ChiefCurator},
		{label: "기획", value: ov.Curators},
		{label: "진행", value: ov.Coordinators},
		{label: "학예팀", value: ov.CuratorialTeam},
		{label: "홍보", value: ov.PR},
		{label: "후원", value: ov.Sponsors},
		{label: "총 사용 예산", value: ov.TotalBudget, emphasized: true, subItems: ov.BudgetBreakdown},
		{label: "총수입", value: ov.TotalRevenue},
		{label: "프로그램", value: ov.Programs},
		{label: "운영 인력", value: ov.StaffCount},
		{label: "관객 수", value: ov.Visitors, emphasized: true},
	}

	for _, row := range rows {
		if row.value == "" {
			continue
		}
		a.b.BulletMain(row.label, row.value, row.emphasized, row.emphasized)
		for _, sub := range row.subItems {
			a.b.BulletSub(sub)
		}
	}

	a.b.BlankLine()
}

func quoteTitle(title string) string {
	if title == "" {
		return ""
	}
	return fmt.Sprintf("《%s》", title)
}

// ── II. 전시 주제와 내용 ──

func (a *Assembler) sectionTheme(data domain.ReportData) {
	a.b.Heading(1, doc.Roman(2), "전시 주제와 내용")

	for _, para := range strings.Split(data.ThemeText, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		a.b.Paragraph(doc.Paragraph{Text: para, Size: doc.SizeBody, Indented: true})
	}
}

// ── III. 전시 구성 ──

func (a *Assembler) sectionComposition(data domain.ReportData) error {
	a.b.Heading(1, doc.Roman(3), "전시 구성")

	a.subRooms(data.Rooms)
	a.subPrograms(data.RelatedPrograms, data.ProgramPhotos)
	a.subStaff(data.Staff)
	a.subPrintedMaterials(data.PrintedMaterials, data.MaterialPhotos)
	return nil
}

func (a *Assembler) subRooms(rooms []domain.Room) {
	a.b.Heading(2, "1", "전시")

	for i, room := range rooms {
		name := room.Name
		if name == "" {
			name = fmt.Sprintf("%d전시실", i+1)
		}
		a.b.Heading(3, strconv.Itoa(i+1), name)

		if len(room.Artists) > 0 {
			a.b.Heading(4, doc.Circled(1), "참여 작가")
			a.b.Paragraph(doc.Paragraph{
				Text:    strings.Join(room.Artists, ", "),
				Size:    doc.SizeBody,
				LeftPad: true,
			})
		}

		hasPlan := doc.FileExists(room.FloorPlan)
		if hasPlan {
			a.b.Heading(4, doc.Circled(2), "도면")
			a.b.Image(room.FloorPlan, 0, false)
		}

		// The photo block keeps circled indices contiguous: it takes ③
		// after a floor plan and ② without one.
		if photos := doc.ExistingFiles(room.Photos); len(photos) > 0 {
			idx := 2
			if hasPlan {
				idx = 3
			}
			a.b.Heading(4, doc.Circled(idx), "전경 사진")
			a.b.ImagesAuto(photos)
		}
	}
}

func (a *Assembler) subPrograms(programs []domain.ProgramEntry, photos []string) {
	stats := AggregatePrograms(programs)

	var suffix string
	if stats.Count > 0 {
		suffix = fmt.Sprintf(" - 총 %d개 프로그램 진행", stats.Count)
		if stats.Participants > 0 {
			suffix += fmt.Sprintf(", %s명 참여", FormatCount(stats.Participants))
		}
	}
	a.b.HeadingSuffix(2, "2", "전시 연계 프로그램", suffix)

	if len(programs) > 0 {
		a.b.Heading(3, "1", "프로그램 운영 내역")

		rows := make([][]string, 0, len(programs))
		for _, p := range programs {
			rows = append(rows, []string{p.Category, p.Title, p.Date, p.Participants, p.Note})
		}
		a.b.Table(
			[]string{"구분", "제목", "일자", "참여 인원", "비고"},
			rows,
			[]float64{2.5, 4.5, 3, 2, 3.5},
		)
	}

	if valid := doc.ExistingFiles(photos); len(valid) > 0 {
		a.b.Heading(3, "2", "프로그램 운영 사진")
		a.b.ImagesAuto(valid)
	}
}

func (a *Assembler) subStaff(staff domain.Staff) {
	a.b.Heading(2, "3", "전시운영인력")

	groups := []struct {
		index string
		name  string
		group domain.StaffGroup
	}{
		{"1", "스태프", staff.MainStaff},
		{"2", "봉사단", staff.Volunteers},
		{"3", "50+문화시설지원단", staff.SupportTeam},
	}

	for _, g := range groups {
		if g.group.Empty() {
			continue
		}
		a.b.Heading(3, g.index, g.name)
		if g.group.Count != "" {
			a.b.Heading(4, doc.Circled(1), "인원")
			a.b.Paragraph(doc.Paragraph{Text: g.group.Count, Size: doc.SizeBody, LeftPad: true})
		}
		if g.group.Role != "" {
			a.b.Heading(4, doc.Circled(2), "역할 및 활동 내용")
			a.b.Paragraph(doc.Paragraph{Text: g.group.Role, Size: doc.SizeBody, LeftPad: true})
		}
	}
}

func (a *Assembler) subPrintedMaterials(materials []domain.PrintedMaterial, photos []string) {
	a.b.Heading(2, "4", "인쇄물")

	if len(materials) > 0 {
		rows := make([][]string, 0, len(materials))
		for _, m := range materials {
			rows = append(rows, []string{m.Type, m.Quantity})
		}
		a.b.Table([]string{"종류", "제작 수량"}, rows, []float64{8, 8})
	}

	if valid := doc.ExistingFiles(photos); len(valid) > 0 {
		a.b.BlankLine()
		a.b.ImagesAuto(valid)
	}
}

// ── IV. 전시 결과 ──

func (a *Assembler) sectionResults(data domain.ReportData) error {
	a.b.Heading(1, doc.Roman(4), "전시 결과")

	if err := a.subBudget(data.Budget); err != nil {
		return err
	}
	a.subRevenue(data.Revenue)
	return a.subVisitorComposition(data.VisitorComposition)
}

func (a *Assembler) subBudget(budget domain.Budget) error {
	a.b.Heading(2, "1", "예산 및 지출")

	if budget.TotalSpent != "" {
		a.b.BulletMain("지출 총액", budget.TotalSpent, true, true)
	}
	for _, note := range budget.BreakdownNotes {
		a.b.BulletSub(note)
	}

	if len(budget.Summary) > 0 {
		a.b.BlankLine()
		rows := make([][]string, 0, len(budget.Summary))
		for _, item := range budget.Summary {
			rows = append(rows, []string{item.Category, item.Planned, item.Actual, item.Note})
		}
		a.b.Table(
			[]string{"사업", "계획 예산(원)", "집행 예산(원)", "계획 대비 집행"},
			rows,
			[]float64{3.5, 4, 4, 4},
		)
	}

	for _, note := range budget.ArrowNotes {
		a.b.ArrowNote(note)
	}

	if len(budget.ChartData) > 0 {
		path, err := a.charts.comparison(budget.ChartData)
		if err != nil {
			return err
		}
		a.b.Image(path, 0, true)
	}

	if len(budget.Details) > 0 {
		a.b.BlankLine()
		a.b.Paragraph(doc.Paragraph{Text: "예산 집행 내역", Size: doc.SizeBody, Bold: true})
		rows := make([][]string, 0, len(budget.Details))
		for _, item := range budget.Details {
			rows = append(rows, []string{item.Category, item.Subcategory, item.Detail, item.Amount, item.Note})
		}
		a.b.Table(
			[]string{"사업", "세목", "내역", "금액(원)", "비고"},
			rows,
			[]float64{2.5, 3, 4, 3.5, 3},
		)
	}

	return nil
}

func (a *Assembler) subRevenue(rev domain.Revenue) {
	a.b.Heading(2, "2", "총 관객 수 및 수익 결산")

	if rev.TotalVisitors != "" {
		a.b.Heading(3, "1", "총 관객 수 "+rev.TotalVisitors)
		if rev.DailyAverage != "" {
			a.b.BulletMain("일평균 관객", rev.DailyAverage, false, false)
		}
		for _, note := range rev.VisitorNotes {
			a.b.BulletSub(note)
		}
	}

	if rev.TotalRevenue != "" {
		a.b.Heading(3, "2", "총 수입 "+rev.TotalRevenue)
		if rev.TicketRevenue != "" {
			a.b.BulletMain("입장 수입", rev.TicketRevenue, false, false)
		}
		if rev.PartnershipRevenue != "" {
			a.b.BulletMain("제휴 수입", rev.PartnershipRevenue, false, false)
		}
		for _, note := range rev.RevenueNotes {
			a.b.BulletSub(note)
		}
	}
}

func (a *Assembler) subVisitorComposition(vc domain.VisitorComposition) error {
	a.b.Heading(2, "3", "관객 구성")

	if vc.Note != "" {
		a.b.Paragraph(doc.Paragraph{Text: "※ " + vc.Note, Size: doc.SizeBody, Bold: true})
	}

	if len(vc.TicketType) > 0 {
		path, err := a.charts.pie(vc.TicketType, "입장권별 관객 구성")
		if err != nil {
			return err
		}
		a.b.Image(path, 0, true)
	}

	for _, note := range vc.TicketAnalysis {
		switch note.Kind {
		case domain.NoteArrow:
			a.b.ArrowNote(note.Text)
		case domain.NoteDetail:
			a.b.BulletSub(note.Text)
		default:
			a.b.BulletMain("", note.Text, true, true)
		}
	}

	if len(vc.VisitorType) > 0 {
		path, err := a.charts.pie(vc.VisitorType, "유형별 관객 수")
		if err != nil {
			return err
		}
		a.b.BlankLine()
		a.b.Image(path, 0, true)
	}

	if len(vc.WeeklyVisitors) > 0 {
		path, err := a.charts.bars(vc.WeeklyVisitors)
		if err != nil {
			return err
		}
		a.b.BlankLine()
		a.b.Image(path, 0, true)
	}

	if vc.Analysis != "" {
		a.b.Paragraph(doc.Paragraph{Text: vc.Analysis, Size: doc.SizeBody, SpaceGap: true})
	}

	return nil
}

// ── V. 홍보 방식 및 언론 보도 ──

func (a *Assembler) sectionPromotion(data domain.ReportData) {
	a.b.Heading(1, doc.Roman(5), "홍보 방식 및 언론 보도")

	a.subPromotionMethods(data.Promotion, data.PromotionPhotos)
	a.subPressList(data.PressCoverage)
	a.subMembership(data.Membership)
	a.subImaOn(data.ImaOn)
}

func (a *Assembler) subPromotionMethods(promo domain.Promotion, photos []string) {
	a.b.Heading(2, "1", "홍보 방식")

	categories := []string{
		promo.Advertising,
		promo.PressRelease,
		promo.WebInvitation,
		promo.Newsletter,
		promo.SNS,
		promo.Other,
	}

	// Dense numbering: empty categories do not consume an index.
	num := 1
	for i, content := range categories {
		if content == "" {
			continue
		}
		a.b.Heading(3, strconv.Itoa(num), promotionLabels[i])
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			a.b.BulletMain("", line, false, false)
		}
		num++
	}

	a.b.ImagesAuto(photos)
}

func (a *Assembler) subPressList(press domain.PressCoverage) {
	a.b.Heading(2, "2", "언론보도 리스트")

	if len(press.PrintMedia) > 0 {
		a.b.Heading(3, "1", "일간지 및 월간지")
		rows := make([][]string, 0, len(press.PrintMedia))
		for _, item := range press.PrintMedia {
			rows = append(rows, []string{item.Outlet, item.Date, item.Title, item.Note})
		}
		a.b.Table([]string{"매체명", "일자", "제목", "비고"}, rows, []float64{3, 3, 6, 4})
	}

	if len(press.OnlineMedia) > 0 {
		a.b.Heading(3, "2", "온라인 매체")
		rows := make([][]string, 0, len(press.OnlineMedia))
		for _, item := range press.OnlineMedia {
			rows = append(rows, []string{item.Outlet, item.Date, item.Title, item.URL})
		}
		a.b.Table([]string{"매체명", "일자", "제목", "URL"}, rows, []float64{3, 3, 5, 5})
	}
}

func (a *Assembler) subMembership(membership string) {
	if membership == "" {
		return
	}
	a.b.Heading(2, "3", "멤버십 커뮤니케이션")
	a.b.Text(membership)
}

func (a *Assembler) subImaOn(imaOn domain.ImaOn) {
	if imaOn.Empty() {
		return
	}
	title := imaOn.Title
	if title == "" {
		title = "IMA ON"
	}
	a.b.Heading(2, "4", title)

	if imaOn.Content != "" {
		a.b.Text(imaOn.Content)
	}
	a.b.ImagesAuto(imaOn.Photos)
}

// ── VI. 평가 및 개선 방안 ──

func (a *Assembler) sectionEvaluation(data domain.ReportData) {
	a.b.Heading(1, doc.Roman(6), "평가 및 개선 방안")
	a.b.Heading(2, "1", "평가")

	var positive, negative []domain.VisitorReview
	for _, r := range data.VisitorReviews {
		if r.Bucket == domain.ReviewPositive {
			positive = append(positive, r)
		} else {
			negative = append(negative, r)
		}
	}

	// Sub-heading indices are dense: a skipped block does not consume one.
	subNum := 1

	if len(data.Evaluation.Positive) > 0 || len(positive) > 0 {
		a.evaluationBlock(subNum, "긍정 평가", data.Evaluation.Positive, positive)
		subNum++
	}

	if len(data.Evaluation.Negative) > 0 || len(negative) > 0 {
		a.evaluationBlock(subNum, "부정 평가", data.Evaluation.Negative, negative)
		subNum++
	}

	if len(data.Evaluation.Improvements) > 0 {
		a.b.Heading(3, strconv.Itoa(subNum), "개선 방안")
		for _, item := range data.Evaluation.Improvements {
			a.b.BulletMain("", item, false, false)
		}
	}
}

func (a *Assembler) evaluationBlock(index int, title string, items []string, reviews []domain.VisitorReview) {
	a.b.Heading(3, strconv.Itoa(index), title)
	for _, item := range items {
		a.b.BulletMain("", item, false, false)
	}

	if len(reviews) > 0 {
		a.b.BlankLine()
		rows := make([][]string, 0, len(reviews))
		for _, r := range reviews {
			rows = append(rows, []string{r.Category, r.Content, r.Source})
		}
		a.b.Table([]string{"분류", "상세 내용(인용)", "출처"}, rows, []float64{2.5, 9.5, 3})
	}
}
