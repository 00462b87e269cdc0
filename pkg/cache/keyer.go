package cache

// Keyer generates cache keys.
type Keyer interface {
	// PlanKey identifies a computed layout plan.
	PlanKey(opts PlanKeyOpts) string
	// ArtifactKey identifies a rendered output of the plan with hash planHash.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// PlanKeyOpts holds every input of a layout computation.
type PlanKeyOpts struct {
	Ticks        []string `json:"ticks"`
	Mode         string   `json:"mode"`
	ColumnWidth  float64  `json:"column_width"`
	HeaderHeight float64  `json:"header_height"`
	Direction    string   `json:"direction"`
	Locale       string   `json:"locale"`
	Formatter    string   `json:"formatter"`
	MonthVariant string   `json:"month_variant"`
	WeekVariant  string   `json:"week_variant"`
	WeekBoundary string   `json:"week_boundary"`
}

// ArtifactKeyOpts holds the render options applied to a plan.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Style      string  `json:"style"`
	FontFamily string  `json:"font_family"`
	FontSize   float64 `json:"font_size"`
	Colors     string  `json:"colors"`
	Scale      float64 `json:"scale"`
}

// DefaultKeyer hashes options into "<kind>:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) PlanKey(opts PlanKeyOpts) string {
	return hashKey("plan", opts)
}

func (DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}
