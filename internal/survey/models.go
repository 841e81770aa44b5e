package survey

import (
	"time"

	"agriai/pkg/domain"
)

// Survey is one submitted questionnaire. Timestamp is whatever the client
// reported; ReceivedAt is the server's clock.
type Survey struct {
	ID         domain.SurveyID
	Role       string
	Responses  map[string]any
	Timestamp  string
	ReceivedAt time.Time
}

// Submission is the input for recording a survey.
type Submission struct {
	Role      string
	Responses map[string]any
	Timestamp string
}
