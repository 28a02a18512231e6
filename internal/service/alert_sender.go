package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"roadguard/internal/config"
	"roadguard/internal/domain"
	"roadguard/pkg/e"
)

// AlertPopper is the consuming side of the emergency-alert queue.
type AlertPopper interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.AlertPayload, error)
}

// AlertSender drains the alert queue and forwards each dispatch batch to
// the configured emergency-services webhook.
type AlertSender struct {
	logger *slog.Logger
	cfg    config.AlertConfig
	queue  AlertPopper
	http   *http.Client
}

func NewAlertSender(logger *slog.Logger, cfg config.AlertConfig, queue AlertPopper) *AlertSender {
	return &AlertSender{
		logger: logger,
		cfg:    cfg,
		queue:  queue,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *AlertSender) Run(ctx context.Context) {
	s.logger.Info("alert sender started", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alert sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			s.logger.Error("alert queue pop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending emergency alert",
			slog.String("accident_id", payload.AccidentID.String()),
			slog.Int("severity", payload.Severity))
		s.sendWithRetry(ctx, payload)
	}
}

func (s *AlertSender) sendWithRetry(ctx context.Context, p domain.AlertPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal alert payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop alert retries due to context cancel")
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create alert request failed", slog.String("error", err.Error()))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("emergency alert delivery failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
