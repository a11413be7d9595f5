package engine

import (
	"fmt"

	"concierge/models"
	"concierge/services/lexicon"
)

// clarifyingQuestion forms the single question to put to the user, chosen in
// priority order: ambiguous fuzzy tokens first, then fields awaiting an
// answer. One question per turn; the rest wait for the next pass.
func clarifyingQuestion(req *models.BookingRequest, ambiguities []string) string {
	if len(ambiguities) > 0 {
		token := ambiguities[0]
		if r, ok := lexicon.FuzzyRange(token); ok {
			return fmt.Sprintf("When you say '%s', do you mean %s?", token, r)
		}
		return fmt.Sprintf("Could you clarify what you mean by '%s' for the time?", token)
	}

	for _, name := range models.CoreFields() {
		if req.FieldByName(name).Status != models.FieldPendingQuestion {
			continue
		}
		switch name {
		case models.FieldService:
			return "Which service would you like to book? (e.g., spa, salon, doctor)"
		case models.FieldDate:
			return "On which date would you like the booking?"
		case models.FieldTime:
			return "What time of day do you prefer? (e.g., 9 AM, afternoon, evening)"
		case models.FieldLocation:
			return "Which city or location should I use for this booking?"
		}
	}
	return ""
}
