// Package survey records questionnaire submissions from farmers and buyers.
package survey

import (
	"context"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"agriai/pkg/domain"
	dErrors "agriai/pkg/domain-errors"
	"agriai/pkg/requestcontext"
)

// Service records surveys.
type Service struct {
	store     Store
	logger    *slog.Logger
	submitted *prometheus.CounterVec
}

// Option configures the survey service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRegisterer registers the submission counter with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(s *Service) {
		s.submitted = promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "agriai_surveys_submitted_total",
			Help: "Total surveys submitted by respondent role",
		}, []string{"role"})
	}
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit appends a survey and returns it with its generated id.
func (s *Service) Submit(ctx context.Context, in Submission) (*Survey, error) {
	sv := &Survey{
		ID:         domain.NewSurveyID(),
		Role:       strings.TrimSpace(in.Role),
		Responses:  in.Responses,
		Timestamp:  in.Timestamp,
		ReceivedAt: requestcontext.Now(ctx),
	}
	if sv.Responses == nil {
		sv.Responses = map[string]any{}
	}
	if err := s.store.Append(ctx, sv); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save survey")
	}

	if s.submitted != nil {
		s.submitted.WithLabelValues(roleLabel(sv.Role)).Inc()
	}
	s.logger.InfoContext(ctx, "survey submitted",
		"survey_id", sv.ID,
		"role", sv.Role,
		"responses", len(sv.Responses),
	)
	return sv, nil
}

// roleLabel bounds metric cardinality to the roles the client offers.
func roleLabel(role string) string {
	switch r := strings.ToLower(role); r {
	case "farmer", "buyer", "seller":
		return r
	case "":
		return "unspecified"
	default:
		return "other"
	}
}
