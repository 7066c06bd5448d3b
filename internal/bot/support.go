package bot

import "sync"

// supportState tracks, per chat, the support topic a user picked while we
// wait for their free-text details. The equivalent of a one-state FSM.
type supportState struct {
	mu     sync.Mutex
	topics map[int64]string
}

func newSupportState() *supportState {
	return &supportState{topics: make(map[int64]string)}
}

func (s *supportState) set(chatID int64, topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics[chatID] = topic
}

// take returns the pending topic for the chat and clears it.
func (s *supportState) take(chatID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	topic, ok := s.topics[chatID]
	if ok {
		delete(s.topics, chatID)
	}
	return topic, ok
}

func (s *supportState) clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.topics, chatID)
}
