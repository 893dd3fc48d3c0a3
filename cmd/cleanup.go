package cmd

import (
	"context"
	"time"

	"tourism-booking/internal/data/repository"

	"go.uber.org/zap"
)

// SessionCleanup menghapus session expired/revoked secara berkala sampai ctx selesai
func SessionCleanup(ctx context.Context, sessionRepo repository.SessionRepository, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}
	log := logger.With(zap.String("worker", "session-cleanup"))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Session cleanup stopped")
			return
		case <-ticker.C:
			n, err := sessionRepo.CleanExpiredSessions(ctx)
			if err != nil {
				log.Error("Failed to clean expired sessions", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("Expired sessions cleaned", zap.Int64("deleted", n))
			}
		}
	}
}
