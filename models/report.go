package models

// FieldConfidence is the per-field entry of an ExplainabilityReport.
type FieldConfidence struct {
	Field      FieldName   `json:"field"`
	Value      string      `json:"value,omitempty"`
	Confidence float64     `json:"confidence"`
	Source     FieldSource `json:"source,omitempty"`
}

// AutonomyLevel is the aggregate measure of how many fields were resolved
// without user confirmation.
type AutonomyLevel string

const (
	AutonomyNone    AutonomyLevel = "none"
	AutonomyPartial AutonomyLevel = "partial"
	AutonomyFull    AutonomyLevel = "full"
)

// ConflictResult reports overlapping bookings for a requested window plus a
// ranked list of open alternatives.
type ConflictResult struct {
	Conflicts      []ExistingBooking `json:"conflicts"`
	CandidateSlots []TimeWindow      `json:"candidateSlots"`
}

// ExplainabilityReport justifies every automated decision made for one
// booking request. It carries structured data and plain-language rationale
// only; rendering belongs to the presentation layer.
//
// OverallConfidence is the minimum confidence across the four core fields,
// with unresolved or pending fields counting as zero. The minimum (rather
// than an average) was chosen so a single weak field is never masked by
// strong ones, and the rule is fixed so repeated runs reproduce the same
// score.
type ExplainabilityReport struct {
	PerField          map[FieldName]FieldConfidence `json:"perField"`
	OverallConfidence float64                       `json:"overallConfidence"`
	AutonomyLevel     AutonomyLevel                 `json:"autonomyLevel"`
	Rationale         []string                      `json:"rationale"`
	PendingQuestion   string                        `json:"pendingQuestion,omitempty"`
}

// PriceQuote is an indicative price for one resolved booking request.
type PriceQuote struct {
	Service     string  `json:"service"`
	Amount      float64 `json:"amount"`
	DiscountPct float64 `json:"discountPct"`
	Currency    string  `json:"currency"`
}

// ResolutionOutcome bundles everything the engine produced for one booking
// request: the enriched request, its conflict analysis and the report.
type ResolutionOutcome struct {
	Request   BookingRequest       `json:"request"`
	Conflicts ConflictResult       `json:"conflicts"`
	Report    ExplainabilityReport `json:"report"`
	Quote     *PriceQuote          `json:"quote,omitempty"`
}
