package domain

// ReportData is the resolved input to report generation. It is built once by
// the adapters package and never mutated afterwards: strings are trimmed,
// empty collection entries are already dropped, and analysis notes and
// visitor reviews carry their classification as explicit variants instead of
// being re-sniffed during rendering.
type ReportData struct {
	ExhibitionTitle string
	PosterImage     string

	Overview  Overview
	ThemeText string

	Rooms            []Room
	RelatedPrograms  []ProgramEntry
	ProgramPhotos    []string
	Staff            Staff
	PrintedMaterials []PrintedMaterial
	MaterialPhotos   []string

	Budget             Budget
	Revenue            Revenue
	VisitorComposition VisitorComposition

	Promotion       Promotion
	PromotionPhotos []string
	PressCoverage   PressCoverage
	Membership      string
	ImaOn           ImaOn

	Evaluation     Evaluation
	VisitorReviews []VisitorReview
}

type Overview struct {
	Title           string
	Period          string
	Artists         []string
	ChiefCurator    string
	Curators        string
	Coordinators    string
	CuratorialTeam  string
	PR              string
	Sponsors        string
	TotalBudget     string
	BudgetBreakdown []string
	TotalRevenue    string
	Programs        string
	StaffCount      string
	Visitors        string
}

type Room struct {
	Name      string
	Artists   []string
	FloorPlan string
	Photos    []string
}

type ProgramEntry struct {
	Category     string
	Title        string
	Date         string
	Participants string
	Note         string
}

type Staff struct {
	MainStaff   StaffGroup
	Volunteers  StaffGroup
	SupportTeam StaffGroup
}

type StaffGroup struct {
	Count string
	Role  string
}

// Empty reports whether the group carries nothing worth rendering.
func (g StaffGroup) Empty() bool {
	return g.Count == "" && g.Role == ""
}

type PrintedMaterial struct {
	Type     string
	Quantity string
}

type Budget struct {
	TotalSpent     string
	BreakdownNotes []string
	Summary        []BudgetSummaryItem
	ArrowNotes     []string
	ChartData      []BudgetChartEntry
	Details        []BudgetDetailItem
}

type BudgetSummaryItem struct {
	Category string
	Planned  string
	Actual   string
	Note     string
}

type BudgetChartEntry struct {
	Category string
	Planned  int
	Actual   int
}

type BudgetDetailItem struct {
	Category    string
	Subcategory string
	Detail      string
	Amount      string
	Note        string
}

type Revenue struct {
	TotalVisitors      string
	DailyAverage       string
	VisitorNotes       []string
	TotalRevenue       string
	TicketRevenue      string
	PartnershipRevenue string
	RevenueNotes       []string
}

// CountEntry is a labeled nonnegative count; series preserve entry order.
// Zero-valued entries are filtered out before the domain model is built.
type CountEntry struct {
	Label string
	Count int
}

// NoteKind classifies one analysis line of the visitor-composition section.
// The classification is decided once, from the line's leading character, when
// the domain model is built.
type NoteKind int

const (
	// NoteHighlight renders as an emphasized main bullet without a label.
	NoteHighlight NoteKind = iota
	// NoteArrow renders as an arrow call-out.
	NoteArrow
	// NoteDetail renders as an indented sub-bullet.
	NoteDetail
)

// AnalysisNote is a pre-classified analysis line with its prefix stripped.
type AnalysisNote struct {
	Kind NoteKind
	Text string
}

type VisitorComposition struct {
	Note           string
	TicketType     []CountEntry
	TicketAnalysis []AnalysisNote
	VisitorType    []CountEntry
	WeeklyVisitors []CountEntry
	Analysis       string
}

type Promotion struct {
	Advertising   string
	PressRelease  string
	WebInvitation string
	Newsletter    string
	SNS           string
	Other         string
}

type PressCoverage struct {
	PrintMedia  []PressEntry
	OnlineMedia []PressEntry
}

type PressEntry struct {
	Outlet string
	Date   string
	Title  string
	Note   string
	URL    string
}

type ImaOn struct {
	Title   string
	Content string
	Photos  []string
}

// Empty reports whether the section should be skipped entirely.
func (i ImaOn) Empty() bool {
	return i.Content == "" && len(i.Photos) == 0
}

type Evaluation struct {
	Positive     []string
	Negative     []string
	Improvements []string
}

// ReviewBucket is the two-way rendering bucket a visitor review lands in.
// The source categories form a small closed label set; suggestions and
// complaints fold into the negative bucket.
type ReviewBucket int

const (
	ReviewPositive ReviewBucket = iota
	ReviewNegative
)

type VisitorReview struct {
	Bucket   ReviewBucket
	Category string
	Content  string
	Source   string
}
