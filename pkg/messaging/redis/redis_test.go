package redis

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/records-api/pkg/messaging"
)

var errPublish = errors.New("publish failed")

func TestBreaker_HalfOpenAdmitsSingleTrial(t *testing.T) {
	cb := newBreaker("test", 1, 20*time.Millisecond)

	_, err := cb.Execute(func() (interface{}, error) { return nil, errPublish })
	require.ErrorIs(t, err, errPublish)
	require.Equal(t, gobreaker.StateOpen, cb.State())

	time.Sleep(40 * time.Millisecond)

	const callers = 5
	var admitted int32
	release := make(chan struct{})
	results := make(chan error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cb.Execute(func() (interface{}, error) {
				atomic.AddInt32(&admitted, 1)
				<-release
				return nil, nil
			})
			results <- err
		}()
	}

	// every caller but the trial one is turned away without blocking
	for i := 0; i < callers-1; i++ {
		assert.ErrorIs(t, <-results, gobreaker.ErrTooManyRequests)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&admitted))

	close(release)
	wg.Wait()
	assert.NoError(t, <-results)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := newBreaker("test", 3, time.Minute)

	for i := 0; i < 2; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, errPublish })
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())

	_, _ = cb.Execute(func() (interface{}, error) { return nil, errPublish })
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Execute(func() (interface{}, error) {
		t.Fatal("call admitted while open")
		return nil, nil
	})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestRedisBroker_PublishFailsFastOnceOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	defer client.Close()

	broker := &RedisBroker{
		client: client,
		cb:     newBreaker("test", 2, time.Minute),
		logger: zerolog.Nop(),
	}
	msg := messaging.NewMessage(messaging.EventClientCreated, map[string]int{"id": 1})

	for i := 0; i < 2; i++ {
		err := broker.Publish(context.Background(), messaging.Channel, msg)
		require.Error(t, err)
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	}

	err := broker.Publish(context.Background(), messaging.Channel, msg)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
