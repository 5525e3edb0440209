// Package worker moves event fan-out off the request path.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/labtrack/labtrack-service/internal/service"
)

// ErrQueueFull is returned when the relay cannot accept more messages.
var ErrQueueFull = errors.New("notification queue full")

// ErrStopped is returned after Stop has been called.
var ErrStopped = errors.New("notification relay stopped")

const defaultQueueSize = 256

type message struct {
	channel string
	payload []byte
}

// NotificationRelay buffers encoded events and forwards them to the
// downstream publisher from a single goroutine. It implements
// service.EventPublisher, so requests never wait on Redis.
type NotificationRelay struct {
	next    service.EventPublisher
	logger  *zap.Logger
	timeout time.Duration

	queue    chan message
	mu       sync.RWMutex
	stopped  bool
	done     chan struct{}
	startOne sync.Once
}

// NewNotificationRelay creates a relay in front of next. A non-positive size
// uses the default queue length.
func NewNotificationRelay(next service.EventPublisher, size int, logger *zap.Logger) *NotificationRelay {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &NotificationRelay{
		next:    next,
		logger:  logger,
		timeout: 5 * time.Second,
		queue:   make(chan message, size),
		done:    make(chan struct{}),
	}
}

// Publish enqueues the payload without blocking.
func (r *NotificationRelay) Publish(_ context.Context, channel string, payload []byte) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.stopped {
		return ErrStopped
	}
	select {
	case r.queue <- message{channel: channel, payload: payload}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the forwarding goroutine. It is safe to call more than once.
func (r *NotificationRelay) Start() {
	r.startOne.Do(func() {
		go r.run()
	})
}

// Stop refuses new messages and waits for queued ones to drain or for ctx to
// expire.
func (r *NotificationRelay) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.stopped {
		r.stopped = true
		close(r.queue)
	}
	r.mu.Unlock()

	r.Start()
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *NotificationRelay) run() {
	defer close(r.done)
	for msg := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		if err := r.next.Publish(ctx, msg.channel, msg.payload); err != nil {
			r.logger.Warn("relay event", zap.String("channel", msg.channel), zap.Error(err))
		}
		cancel()
	}
}

// StartNotificationWorker registers the notification handlers on the
// dispatcher.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
