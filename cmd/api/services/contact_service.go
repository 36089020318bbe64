package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio/cmd/api/clients/formclient"
	"portfolio/cmd/api/dto"
	"portfolio/cmd/api/trace"
	"portfolio/cmd/internal/logger"
)

var (
	ErrContactDisabled = errors.New("contact relay is not configured")
	ErrRelayFailed     = errors.New("contact relay failed")
)

// Relay 는 문의를 외부 폼 서비스로 전달한다. *formclient.Client 가 구현한다.
type Relay interface {
	Enabled() bool
	Submit(ctx context.Context, s formclient.Submission) error
}

type ContactService struct {
	relay Relay
}

func NewContactService(relay Relay) *ContactService {
	return &ContactService{relay: relay}
}

// Submit 은 검증이 끝난 문의를 릴레이로 보낸다. 재시도는 하지 않는다.
func (s *ContactService) Submit(ctx context.Context, in dto.ContactRequestDTO) error {
	if !s.relay.Enabled() {
		return ErrContactDisabled
	}
	sub := formclient.Submission{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
	if err := s.relay.Submit(ctx, sub); err != nil {
		logger.ErrorWithFields("contact relay submit failed", logger.Fields{
			"error":      err.Error(),
			"request_id": trace.RequestIDFromContext(ctx),
		})
		return fmt.Errorf("%w: %v", ErrRelayFailed, err)
	}
	logger.InfoWithFields("contact message relayed", logger.Fields{
		"request_id": trace.RequestIDFromContext(ctx),
	})
	return nil
}
