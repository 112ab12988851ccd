package event

import "sync"

const (
	EventRoundSettled      = "round.settled"
	EventDepositConfirmed  = "deposit.confirmed"
	EventWithdrawRequested = "withdraw.requested"
)

// RoundSettled is the payload published for every finished round.
type RoundSettled struct {
	PlayerID string `json:"player_id"`
	Game     string `json:"game"`
	Bet      int64  `json:"bet"`
	Payout   int64  `json:"payout"`
}

type Handler func(payload interface{})

// Bus is a minimal in-process pub/sub. Handlers run on their own goroutines;
// publishers never block on subscribers.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

func (b *Bus) Publish(topic string, payload interface{}) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, h := range b.handlers[topic] {
		go h(payload)
	}
}

// PublishSync runs handlers inline. Used where ordering matters and in tests.
func (b *Bus) PublishSync(topic string, payload interface{}) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, h := range b.handlers[topic] {
		h(payload)
	}
}
