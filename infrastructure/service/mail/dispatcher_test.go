package mail

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkwave/sparkwave-login/domain/entity"
	"github.com/sparkwave/sparkwave-login/infrastructure/service/logger"
)

type captureSender struct {
	mu       sync.Mutex
	messages []Message
	fail     error
	sent     chan struct{}
}

func newCaptureSender() *captureSender {
	return &captureSender{sent: make(chan struct{}, 16)}
}

func (s *captureSender) Send(ctx context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent <- struct{}{}
	if s.fail != nil {
		return s.fail
	}
	s.messages = append(s.messages, msg)
	return nil
}

func (s *captureSender) all() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

type countingLogger struct {
	mu    sync.Mutex
	warns int
}

func (l *countingLogger) Info(ctx context.Context, message string, fields map[string]interface{}) {}
func (l *countingLogger) Warn(ctx context.Context, message string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns++
}
func (l *countingLogger) Error(ctx context.Context, message string, err error, fields map[string]interface{}) {
}
func (l *countingLogger) Debug(ctx context.Context, message string, fields map[string]interface{}) {}
func (l *countingLogger) WithFields(fields map[string]interface{}) logger.Logger                   { return l }

func waitSent(t *testing.T, sender *captureSender, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-sender.sent:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
}

func TestDispatcher_DeliversEnqueuedMessage(t *testing.T) {
	sender := newCaptureSender()
	d := NewDispatcher(sender, &countingLogger{}, 8)
	d.Start(context.Background())
	defer d.Close()

	d.Enqueue(Message{To: "alice@example.com", Subject: "oi", Body: "corpo"})

	waitSent(t, sender, 1)
	msgs := sender.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, "alice@example.com", msgs[0].To)
}

func TestDispatcher_EnqueueNeverBlocksWhenFull(t *testing.T) {
	// No worker running: the queue fills up and the overflow is dropped.
	log := &countingLogger{}
	d := NewDispatcher(newCaptureSender(), log, 2)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			d.Enqueue(Message{To: "x@example.com"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
	assert.Equal(t, 3, log.warns)
}

func TestDispatcher_DeliveryFailureIsSwallowed(t *testing.T) {
	sender := newCaptureSender()
	sender.fail = errors.New("smtp unreachable")
	d := NewDispatcher(sender, &countingLogger{}, 8)
	d.Start(context.Background())
	defer d.Close()

	d.Enqueue(Message{To: "alice@example.com"})
	d.Enqueue(Message{To: "bob@example.com"})

	// Both attempts happen; neither delivery succeeds, nothing panics.
	waitSent(t, sender, 2)
	assert.Empty(t, sender.all())
}

func TestNotifier_WelcomeWithCredentials(t *testing.T) {
	sender := newCaptureSender()
	d := NewDispatcher(sender, &countingLogger{}, 8)
	d.Start(context.Background())
	defer d.Close()
	n := NewNotifier(d)

	user := &entity.User{Username: "dave", Email: "dave@example.com", FullName: "Dave Costa"}
	n.SendWelcome(user, "initial123")

	waitSent(t, sender, 1)
	msgs := sender.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, "dave@example.com", msgs[0].To)
	assert.Equal(t, subjectWelcome, msgs[0].Subject)
	assert.True(t, strings.Contains(msgs[0].Body, "Senha: initial123"))
}

func TestNotifier_WelcomeWithoutCredentials(t *testing.T) {
	sender := newCaptureSender()
	d := NewDispatcher(sender, &countingLogger{}, 8)
	d.Start(context.Background())
	defer d.Close()
	n := NewNotifier(d)

	user := &entity.User{Username: "bob", Email: "bob@example.com", FullName: "Bob Souza"}
	n.SendWelcome(user, "")

	waitSent(t, sender, 1)
	msgs := sender.all()
	require.Len(t, msgs, 1)
	assert.False(t, strings.Contains(msgs[0].Body, "Senha:"))
}

func TestNotifier_AccountStatus(t *testing.T) {
	sender := newCaptureSender()
	d := NewDispatcher(sender, &countingLogger{}, 8)
	d.Start(context.Background())
	defer d.Close()
	n := NewNotifier(d)

	user := &entity.User{Email: "carol@example.com", FullName: "Carol Lima"}
	n.SendAccountStatus(user, false)

	waitSent(t, sender, 1)
	msgs := sender.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, subjectAccountStatus, msgs[0].Subject)
	assert.True(t, strings.Contains(msgs[0].Body, "desativada"))
}
