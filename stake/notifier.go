package stake

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/meerkat-millionaires/kat-staking/models"
)

const DefaultFeedSize = 50

type Notifier interface {
	Notify(n models.Notification)
}

// Notifiers fans a notification out to every sink.
type Notifiers []Notifier

func (ns Notifiers) Notify(n models.Notification) {
	for _, notifier := range ns {
		notifier.Notify(n)
	}
}

type LogNotifier struct{}

func (LogNotifier) Notify(n models.Notification) {
	entry := log.WithField("level", n.Level)
	if n.Link != "" {
		entry = entry.WithField("link", n.Link)
	}
	if n.Level == models.NotificationError {
		entry.Errorln("[NOTIFY]", n.Message)
		return
	}
	entry.Infoln("[NOTIFY]", n.Message)
}

// Feed keeps the most recent notifications, newest first.
type Feed struct {
	mu    sync.Mutex
	size  int
	items []models.Notification
}

func (f *Feed) Notify(n models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]models.Notification{n}, f.items...)
	if len(f.items) > f.size {
		f.items = f.items[:f.size]
	}
}

func (f *Feed) Recent() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Notification, len(f.items))
	copy(out, f.items)
	return out
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{size: size}
}
