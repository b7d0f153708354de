package cta

import (
	"context"
	"log"
	"time"

	ctaRepo "github.com/hysteriagg/muster/internal/repositories/cta"
)

// scheduleTimer arms a cancellable expiry timer for a channel's window,
// replacing any existing one
func (s *service) scheduleTimer(channelID string, expiresAt time.Time) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()

	if timer, ok := s.timers[channelID]; ok {
		timer.Stop()
	}

	delay := expiresAt.Sub(s.clock.Now())
	if delay < 0 {
		delay = 0
	}

	s.timers[channelID] = time.AfterFunc(delay, func() {
		s.handleExpiry(channelID)
	})
}

// cancelTimer stops and forgets a channel's expiry timer
func (s *service) cancelTimer(channelID string) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()

	if timer, ok := s.timers[channelID]; ok {
		timer.Stop()
		delete(s.timers, channelID)
	}
}

// handleExpiry fires when a channel's timer elapses. The window is
// re-checked against the store, a timer can race a manual close or a
// replacement window.
func (s *service) handleExpiry(channelID string) {
	ctx := context.Background()

	notice, err := s.expireLocked(ctx, channelID)
	if err != nil {
		log.Printf("failed to close expired CTA in channel %s: %v", channelID, err)
		return
	}
	if notice != nil {
		s.notify(notice)
	}
}

func (s *service) expireLocked(ctx context.Context, channelID string) (*ClosedNotice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	window, err := s.ctaRepo.GetCTAByChannel(ctx, &ctaRepo.GetCTAByChannelInput{
		ChannelID: channelID,
	})
	if err != nil {
		// Already closed manually
		return nil, nil
	}

	if s.clock.Now().Before(window.ExpiresAt) {
		// A newer window took this channel, re-arm for it
		s.scheduleTimer(channelID, window.ExpiresAt)
		return nil, nil
	}

	_, notice, err := s.closeWindow(ctx, window, systemActor, "")
	if err != nil {
		return nil, err
	}

	return notice, nil
}

// Reconcile re-arms timers for persisted windows after a restart, closing
// immediately those that expired while the process was down
func (s *service) Reconcile(ctx context.Context) error {
	output, err := s.ctaRepo.GetActiveCTAs(ctx, &ctaRepo.GetActiveCTAsInput{})
	if err != nil {
		return err
	}

	now := s.clock.Now()

	for _, window := range output.CTAs {
		if now.Before(window.ExpiresAt) {
			s.scheduleTimer(window.ChannelID, window.ExpiresAt)
			continue
		}

		notice, err := s.expireLocked(ctx, window.ChannelID)
		if err != nil {
			log.Printf("failed to reconcile expired CTA in channel %s: %v", window.ChannelID, err)
			continue
		}
		if notice != nil {
			s.notify(notice)
		}
	}

	return nil
}
