package models

// FieldName identifies one of the four booking fields the engine resolves.
type FieldName string

const (
	FieldService  FieldName = "service"
	FieldDate     FieldName = "date"
	FieldTime     FieldName = "time"
	FieldLocation FieldName = "location"
)

// FieldSource records how a field value was obtained.
type FieldSource string

const (
	SourceExtracted     FieldSource = "extracted"
	SourceFuzzyResolved FieldSource = "fuzzy-resolved"
	SourceAutoFilled    FieldSource = "auto-filled"
	SourceSlotSelected  FieldSource = "slot-engine-selected"
	SourceUserConfirmed FieldSource = "user-confirmed"
)

// FieldStatus is the per-field resolution state. A field moves
// unresolved -> {resolved | pending-question} within a single pass and
// never regresses.
type FieldStatus string

const (
	FieldUnresolved      FieldStatus = "unresolved"
	FieldResolved        FieldStatus = "resolved"
	FieldPendingQuestion FieldStatus = "pending-question"
)

// Field is the tagged resolution state of a single booking field.
// A resolved field always carries a non-empty value, a source, and a
// confidence in [0,1]; an unresolved field carries confidence 0 and no source.
type Field struct {
	Status     FieldStatus `json:"status"`
	Value      string      `json:"value,omitempty"`
	Window     *TimeWindow `json:"window,omitempty"` // set for the time field
	Confidence float64     `json:"confidence"`
	Source     FieldSource `json:"source,omitempty"`
	Rule       string      `json:"rule,omitempty"` // rule that produced an auto-filled value
}

// Resolved reports whether the field reached a final value.
func (f Field) Resolved() bool {
	return f.Status == FieldResolved
}

// Intent values recognized by the extractor.
const (
	IntentBook   = "book"
	IntentModify = "modify"
	IntentCancel = "cancel"
)

// BookingRequest is one structured booking derived from a user utterance.
// An utterance naming several services yields one BookingRequest per service,
// all sharing the same delegation context.
type BookingRequest struct {
	Service  Field `json:"service"`
	Date     Field `json:"date"`
	Time     Field `json:"time"`
	Location Field `json:"location"`

	Delegated bool   `json:"delegated"`
	Intent    string `json:"intent"`
	Urgent    bool   `json:"urgent,omitempty"`
	Style     string `json:"style,omitempty"` // concise, formal or friendly
	RawText   string `json:"rawText"`
}

// FieldByName returns a pointer to the named field, or nil.
func (r *BookingRequest) FieldByName(name FieldName) *Field {
	switch name {
	case FieldService:
		return &r.Service
	case FieldDate:
		return &r.Date
	case FieldTime:
		return &r.Time
	case FieldLocation:
		return &r.Location
	}
	return nil
}

// CoreFields lists the four fields in their canonical order.
func CoreFields() []FieldName {
	return []FieldName{FieldService, FieldDate, FieldTime, FieldLocation}
}

// Complete reports whether every core field reached a resolved value.
func (r *BookingRequest) Complete() bool {
	for _, name := range CoreFields() {
		if !r.FieldByName(name).Resolved() {
			return false
		}
	}
	return true
}
