package dbmodels

// PipelineStage is one named step of a hiring workflow. CompanyID == nil
// marks a global default stage; a company-scoped set is a frozen copy of the
// defaults made on first use and is not cascaded when defaults change later.
type PipelineStage struct {
	BaseModel
	CompanyID  *string `gorm:"type:varchar(36);uniqueIndex:idx_stage_scope_slug;index"`
	Name       string  `gorm:"type:varchar(255)"`
	Slug       string  `gorm:"type:varchar(100);uniqueIndex:idx_stage_scope_slug"`
	Position   int
	IsTerminal bool
	Active     bool
	IsDefault  bool
}

func (s PipelineStage) IsGlobal() bool {
	return s.CompanyID == nil
}

type StageSeed struct {
	Name       string
	Slug       string
	Position   int
	IsTerminal bool
}

// DefaultStageSeeds is the global default pipeline, seeded once at setup.
var DefaultStageSeeds = []StageSeed{
	{Name: "Applied", Slug: "applied", Position: 1},
	{Name: "Screening", Slug: "screening", Position: 2},
	{Name: "Assessment", Slug: "assessment", Position: 3},
	{Name: "Interview", Slug: "interview", Position: 4},
	{Name: "Offer", Slug: "offer", Position: 5},
	{Name: "Hired", Slug: "hired", Position: 6, IsTerminal: true},
	{Name: "Rejected", Slug: "rejected", Position: 7, IsTerminal: true},
}
