// internal/app/system/workers/chatpurge.go
package workers

import (
	"context"
	"sync"
	"time"

	chatstore "github.com/toonworks/studiohub/internal/app/store/chat"
	"go.uber.org/zap"
)

// ChatPurge is a background worker that deletes chat messages older than
// the retention window.
type ChatPurge struct {
	chat      *chatstore.Store
	log       *zap.Logger
	interval  time.Duration
	retention time.Duration
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// NewChatPurge creates a chat purge worker. interval is how often the
// purge runs, retention is how long messages are kept.
func NewChatPurge(chat *chatstore.Store, logger *zap.Logger, interval, retention time.Duration) *ChatPurge {
	return &ChatPurge{
		chat:      chat,
		log:       logger,
		interval:  interval,
		retention: retention,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the background purge loop.
func (w *ChatPurge) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("chat purge worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("retention", w.retention))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *ChatPurge) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("chat purge worker stopped")
}

func (w *ChatPurge) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.purge()
		}
	}
}

func (w *ChatPurge) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := w.chat.PurgeOlderThan(ctx, time.Now().Add(-w.retention))
	if err != nil {
		w.log.Error("failed to purge old chat messages", zap.Error(err))
		return
	}

	if count > 0 {
		w.log.Info("purged old chat messages", zap.Int64("count", count))
	}
}
