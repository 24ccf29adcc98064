package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSender struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (s *captureSender) SendText(ctx context.Context, chatID string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, chatID+":"+text)
	return nil
}

func (s *captureSender) messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.sent))
	copy(out, s.sent)
	return out
}

func TestDispatcher_DeliversQueuedMessages(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, DispatcherConfig{Logger: zerolog.Nop()})

	d.Notify(context.Background(), "42", "first")
	d.Notify(context.Background(), "43", "second")
	d.Close()

	msgs := sender.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "42:first", msgs[0])
	assert.Equal(t, "43:second", msgs[1])
}

func TestDispatcher_NotifyAfterHonorsDelay(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, DispatcherConfig{Logger: zerolog.Nop()})

	start := time.Now()
	d.NotifyAfter(50*time.Millisecond, "42", "delayed")

	require.Eventually(t, func() bool {
		return len(sender.messages()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	d.Close()
}

func TestDispatcher_SendFailureIsSwallowed(t *testing.T) {
	sender := &captureSender{err: errors.New("bot was blocked by the user")}
	d := NewDispatcher(sender, DispatcherConfig{Logger: zerolog.Nop()})

	// Neither the enqueue nor the close path may surface the failure.
	d.Notify(context.Background(), "42", "hello")
	d.Close()

	assert.Empty(t, sender.messages())
}

func TestDispatcher_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	sender := &captureSender{}
	d := NewDispatcher(sender, DispatcherConfig{QueueSize: 1, Logger: zerolog.Nop()})

	// Hold the worker on a delayed message so the queue backs up.
	d.NotifyAfter(time.Hour, "42", "stuck")

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Notify(context.Background(), "43", "burst")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full queue")
	}

	d.Close()
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(&captureSender{}, DispatcherConfig{Logger: zerolog.Nop()})
	d.Close()
	d.Close()
}
