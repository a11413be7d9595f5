package engine

import "concierge/models"

// buildReport aggregates per-field confidences and the accumulated rationale
// into the ExplainabilityReport for one sub-request.
//
// OverallConfidence is the minimum across the four core fields (unresolved
// and pending fields count as zero); see models.ExplainabilityReport for why
// the minimum was chosen. AutonomyLevel: partial while any field still needs
// a clarifying answer, full when delegated decisions closed every gap, none
// when the user supplied everything themselves.
func (e *DefaultResolutionEngine) buildReport(x *extraction) models.ExplainabilityReport {
	req := &x.req

	perField := make(map[models.FieldName]models.FieldConfidence, 4)
	overall := 1.0
	pending := 0
	delegatedDecisions := 0

	for _, name := range models.CoreFields() {
		f := req.FieldByName(name)
		conf := f.Confidence
		if !f.Resolved() {
			conf = 0
		}
		perField[name] = models.FieldConfidence{
			Field:      name,
			Value:      f.Value,
			Confidence: conf,
			Source:     f.Source,
		}
		if f.Status == models.FieldPendingQuestion {
			pending++
		}
		if f.Source == models.SourceAutoFilled || f.Source == models.SourceSlotSelected {
			delegatedDecisions++
		}
		if conf < overall {
			overall = conf
		}
	}

	autonomy := models.AutonomyNone
	switch {
	case pending > 0:
		autonomy = models.AutonomyPartial
	case delegatedDecisions > 0:
		autonomy = models.AutonomyFull
	}

	report := models.ExplainabilityReport{
		PerField:          perField,
		OverallConfidence: overall,
		AutonomyLevel:     autonomy,
		Rationale:         append([]string(nil), x.notes...),
	}
	if pending > 0 || len(x.ambiguities) > 0 {
		report.PendingQuestion = clarifyingQuestion(req, x.ambiguities)
	}
	return report
}
