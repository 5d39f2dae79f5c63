package intake

import (
	"context"
	"time"

	"github.com/rbdtech/afc-portal-api/internal/model"
	"github.com/rbdtech/afc-portal-api/pkg/logger"
	"github.com/rbdtech/afc-portal-api/pkg/webhook"
)

const dispatchTimeout = 15 * time.Second

// Service forwards landing-page intake forms to the external
// automation webhook. Dispatch is fire-and-forget: the submitter gets
// an acknowledgement regardless of the webhook outcome, and failures
// are only logged.
type Service struct {
	publisher webhook.Publisher
	logger    *logger.Logger
	enabled   bool
}

func NewService(publisher webhook.Publisher, logger *logger.Logger, enabled bool) *Service {
	return &Service{
		publisher: publisher,
		logger:    logger,
		enabled:   enabled,
	}
}

// Submit stamps the submission time if the client omitted it and hands
// the form to the webhook in the background.
func (s *Service) Submit(ctx context.Context, form *model.IntakeSubmission) {
	now := time.Now()
	if form.SubmittedDate == "" {
		form.SubmittedDate = now.Format("2006-01-02")
	}
	if form.SubmittedTime == "" {
		form.SubmittedTime = now.Format("15:04:05")
	}

	if !s.enabled {
		s.logger.Debug("intake webhook disabled, dropping submission")
		return
	}

	payload := *form
	go func() {
		dispatchCtx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := s.publisher.Publish(dispatchCtx, payload); err != nil {
			s.logger.Error(err, "intake webhook dispatch failed")
		}
	}()
}
