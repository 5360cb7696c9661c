package api

// ReportData is the wire schema for a full exhibition report. It mirrors the
// JSON produced by the data-collection front end; every field except
// ExhibitionTitle is optional.
type ReportData struct {
	ExhibitionTitle string `json:"exhibition_title"`
	PosterImage     string `json:"poster_image,omitempty"`

	Overview  Overview `json:"overview"`
	ThemeText string   `json:"theme_text,omitempty"`

	Rooms            []Room            `json:"rooms,omitempty"`
	RelatedPrograms  []ProgramEntry    `json:"related_programs,omitempty"`
	ProgramPhotos    []string          `json:"program_photos,omitempty"`
	Staff            Staff             `json:"staff"`
	PrintedMaterials []PrintedMaterial `json:"printed_materials,omitempty"`
	MaterialPhotos   []string          `json:"material_photos,omitempty"`

	Budget             Budget             `json:"budget"`
	Revenue            Revenue            `json:"revenue"`
	VisitorComposition VisitorComposition `json:"visitor_composition"`

	Promotion       Promotion     `json:"promotion"`
	PromotionPhotos []string      `json:"promotion_photos,omitempty"`
	PressCoverage   PressCoverage `json:"press_coverage"`
	Membership      string        `json:"membership,omitempty"`
	ImaOn           ImaOn         `json:"ima_on"`

	Evaluation     Evaluation      `json:"evaluation"`
	VisitorReviews []VisitorReview `json:"visitor_reviews,omitempty"`
}

type Overview struct {
	Title           string   `json:"title,omitempty"`
	Period          string   `json:"period,omitempty"`
	Artists         []string `json:"artists,omitempty"`
	ChiefCurator    string   `json:"chief_curator,omitempty"`
	Curators        string   `json:"curators,omitempty"`
	Coordinators    string   `json:"coordinators,omitempty"`
	CuratorialTeam  string   `json:"curatorial_team,omitempty"`
	PR              string   `json:"pr,omitempty"`
	Sponsors        string   `json:"sponsors,omitempty"`
	TotalBudget     string   `json:"total_budget,omitempty"`
	BudgetBreakdown []string `json:"budget_breakdown,omitempty"`
	TotalRevenue    string   `json:"total_revenue,omitempty"`
	Programs        string   `json:"programs,omitempty"`
	StaffCount      string   `json:"staff_count,omitempty"`
	Visitors        string   `json:"visitors,omitempty"`
}

type Room struct {
	Name      string   `json:"name,omitempty"`
	Artists   []string `json:"artists,omitempty"`
	FloorPlan string   `json:"floor_plan,omitempty"`
	Photos    []string `json:"photos,omitempty"`
}

type ProgramEntry struct {
	Category     string `json:"category,omitempty"`
	Title        string `json:"title,omitempty"`
	Date         string `json:"date,omitempty"`
	Participants string `json:"participants,omitempty"`
	Note         string `json:"note,omitempty"`
}

// Staff carries the three fixed operations groups of the template.
type Staff struct {
	MainStaff   StaffGroup `json:"main_staff"`
	Volunteers  StaffGroup `json:"volunteers"`
	SupportTeam StaffGroup `json:"support_team"`
}

type StaffGroup struct {
	Count string `json:"count,omitempty"`
	Role  string `json:"role,omitempty"`
}

type PrintedMaterial struct {
	Type     string `json:"type,omitempty"`
	Quantity string `json:"quantity,omitempty"`
}

type Budget struct {
	TotalSpent     string              `json:"total_spent,omitempty"`
	BreakdownNotes []string            `json:"breakdown_notes,omitempty"`
	Summary        []BudgetSummaryItem `json:"summary,omitempty"`
	ArrowNotes     []string            `json:"arrow_notes,omitempty"`
	ChartData      []BudgetChartEntry  `json:"chart_data,omitempty"`
	Details        []BudgetDetailItem  `json:"details,omitempty"`
}

type BudgetSummaryItem struct {
	Category string `json:"category,omitempty"`
	Planned  string `json:"planned,omitempty"`
	Actual   string `json:"actual,omitempty"`
	Note     string `json:"note,omitempty"`
}

// BudgetChartEntry is one category of the planned-versus-actual comparison
// chart. Entry order is meaningful and preserved through rendering.
type BudgetChartEntry struct {
	Category string `json:"category"`
	Planned  int    `json:"planned"`
	Actual   int    `json:"actual"`
}

type BudgetDetailItem struct {
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Detail      string `json:"detail,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Note        string `json:"note,omitempty"`
}

type Revenue struct {
	TotalVisitors      string   `json:"total_visitors,omitempty"`
	DailyAverage       string   `json:"daily_average,omitempty"`
	VisitorNotes       []string `json:"visitor_notes,omitempty"`
	TotalRevenue       string   `json:"total_revenue,omitempty"`
	TicketRevenue      string   `json:"ticket_revenue,omitempty"`
	PartnershipRevenue string   `json:"partnership_revenue,omitempty"`
	RevenueNotes       []string `json:"revenue_notes,omitempty"`
}

// CountEntry is a labeled count in a composition series. Series order is the
// order entries were entered in the front end and must survive round trips,
// which is why these are slices rather than maps.
type CountEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type VisitorComposition struct {
	Note           string       `json:"note,omitempty"`
	TicketType     []CountEntry `json:"ticket_type,omitempty"`
	TicketAnalysis []string     `json:"ticket_analysis,omitempty"`
	VisitorType    []CountEntry `json:"visitor_type,omitempty"`
	WeeklyVisitors []CountEntry `json:"weekly_visitors,omitempty"`
	Analysis       string       `json:"analysis,omitempty"`
}

type Promotion struct {
	Advertising   string `json:"advertising,omitempty"`
	PressRelease  string `json:"press_release,omitempty"`
	WebInvitation string `json:"web_invitation,omitempty"`
	Newsletter    string `json:"newsletter,omitempty"`
	SNS           string `json:"sns,omitempty"`
	Other         string `json:"other,omitempty"`
}

type PressCoverage struct {
	PrintMedia  []PressEntry `json:"print_media,omitempty"`
	OnlineMedia []PressEntry `json:"online_media,omitempty"`
}

// PressEntry covers both press collections; print media fills Note, online
// media fills URL.
type PressEntry struct {
	Outlet string `json:"outlet,omitempty"`
	Date   string `json:"date,omitempty"`
	Title  string `json:"title,omitempty"`
	Note   string `json:"note,omitempty"`
	URL    string `json:"url,omitempty"`
}

type ImaOn struct {
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content,omitempty"`
	Photos  []string `json:"photos,omitempty"`
}

type Evaluation struct {
	Positive     []string `json:"positive,omitempty"`
	Negative     []string `json:"negative,omitempty"`
	Improvements []string `json:"improvements,omitempty"`
}

type VisitorReview struct {
	Category string `json:"category,omitempty"`
	Content  string `json:"content,omitempty"`
	Source   string `json:"source,omitempty"`
}
