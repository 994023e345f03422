package plans

// Collection is the document collection that holds subscription plans.
const Collection = "subscription_plans"

// Unlimited marks a limit without an upper bound.
const Unlimited = -1

// Limits caps what an organization on a plan may create.
type Limits struct {
	MaxUsers          int `json:"max_users"`
	MaxRecords        int `json:"max_records"`
	MaxTemplates      int `json:"max_templates"`
	MaxReportsMonthly int `json:"max_reports_per_month"`
	StorageMB         int `json:"storage_mb"`
}

// Features toggles plan-gated functionality.
type Features struct {
	CustomTemplates   bool `json:"custom_templates"`
	CustomBranding    bool `json:"custom_branding"`
	PDFExport         bool `json:"pdf_export"`
	APIAccess         bool `json:"api_access"`
	PrioritySupport   bool `json:"priority_support"`
	TeamManagement    bool `json:"team_management"`
	OfflineMode       bool `json:"offline_mode"`
	AdvancedAnalytics bool `json:"advanced_analytics"`
	SSO               bool `json:"sso"`
}

// Plan is one subscription plan document.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PriceMonthly int      `json:"price_monthly"` // cents
	PriceYearly  int      `json:"price_yearly"`  // cents
	Currency     string   `json:"currency"`
	Limits       Limits   `json:"limits"`
	Features     Features `json:"features"`
	SortOrder    int      `json:"sort_order"`
	IsActive     bool     `json:"is_active"`
}

// Defaults returns the free, pro and enterprise plans in display order.
func Defaults() []Plan {
	return []Plan{
		{
			ID:          "free",
			Name:        "Free",
			Description: "For individuals getting started with inspections",
			Currency:    "usd",
			Limits: Limits{
				MaxUsers:          1,
				MaxRecords:        10,
				MaxTemplates:      3,
				MaxReportsMonthly: 10,
				StorageMB:         100,
			},
			Features: Features{
				PDFExport:   true,
				OfflineMode: true,
			},
			SortOrder: 0,
			IsActive:  true,
		},
		{
			ID:           "pro",
			Name:         "Pro",
			Description:  "For growing teams that inspect every day",
			PriceMonthly: 2900,
			PriceYearly:  29000,
			Currency:     "usd",
			Limits: Limits{
				MaxUsers:          10,
				MaxRecords:        Unlimited,
				MaxTemplates:      Unlimited,
				MaxReportsMonthly: 500,
				StorageMB:         10240,
			},
			Features: Features{
				CustomTemplates:   true,
				CustomBranding:    true,
				PDFExport:         true,
				TeamManagement:    true,
				OfflineMode:       true,
				AdvancedAnalytics: true,
			},
			SortOrder: 10,
			IsActive:  true,
		},
		{
			ID:           "enterprise",
			Name:         "Enterprise",
			Description:  "For organizations with compliance and scale requirements",
			PriceMonthly: 9900,
			PriceYearly:  99000,
			Currency:     "usd",
			Limits: Limits{
				MaxUsers:          Unlimited,
				MaxRecords:        Unlimited,
				MaxTemplates:      Unlimited,
				MaxReportsMonthly: Unlimited,
				StorageMB:         Unlimited,
			},
			Features: Features{
				CustomTemplates:   true,
				CustomBranding:    true,
				PDFExport:         true,
				APIAccess:         true,
				PrioritySupport:   true,
				TeamManagement:    true,
				OfflineMode:       true,
				AdvancedAnalytics: true,
				SSO:               true,
			},
			SortOrder: 20,
			IsActive:  true,
		},
	}
}
