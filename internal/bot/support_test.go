package bot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportState_TakeClearsTopic(t *testing.T) {
	s := newSupportState()
	s.set(1, "❓ Другое")

	topic, ok := s.take(1)
	assert.True(t, ok)
	assert.Equal(t, "❓ Другое", topic)

	_, ok = s.take(1)
	assert.False(t, ok, "topic must be consumed on take")
}

func TestSupportState_ClearDropsPendingTopic(t *testing.T) {
	s := newSupportState()
	s.set(1, "❓ Другое")
	s.clear(1)

	_, ok := s.take(1)
	assert.False(t, ok)
}

func TestSupportState_IsolatedPerChat(t *testing.T) {
	s := newSupportState()
	s.set(1, "a")
	s.set(2, "b")

	topic, ok := s.take(2)
	assert.True(t, ok)
	assert.Equal(t, "b", topic)

	topic, ok = s.take(1)
	assert.True(t, ok)
	assert.Equal(t, "a", topic)
}

func TestSupportState_ConcurrentAccess(t *testing.T) {
	s := newSupportState()

	var wg sync.WaitGroup
	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.set(id, "topic")
			s.take(id)
		}(i)
	}
	wg.Wait()
}
