package realtime

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const changesChannel = "portal:changes"

// ChangeEvent tells open admin panels which resource was mutated and should
// be refetched. The origin id filters out the instance's own relayed events.
type ChangeEvent struct {
	Recurso string `json:"recurso"` // "vagas" | "usuarios"
	Origin  string `json:"origin,omitempty"`
}

// Notifier broadcasts change events to local websocket clients and, when a
// Redis client is configured, relays them to the other portal instances.
type Notifier struct {
	Hub      *Hub
	RDB      *redis.Client // nil = single-instance, local hub only
	Logger   *zap.Logger
	instance string
}

func NewNotifier(hub *Hub, rdb *redis.Client, logger *zap.Logger) *Notifier {
	return &Notifier{
		Hub:      hub,
		RDB:      rdb,
		Logger:   logger,
		instance: uuid.NewString(),
	}
}

// Notify announces that a collection changed. Never fails the mutation that
// triggered it: fan-out problems are logged and swallowed here.
func (n *Notifier) Notify(ctx context.Context, recurso string) {
	ev := ChangeEvent{Recurso: recurso, Origin: n.instance}
	n.Hub.BroadcastJSON(ev)

	if n.RDB == nil {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		n.Logger.Error("realtime: marshal change event", zap.Error(err))
		return
	}
	if err := n.RDB.Publish(ctx, changesChannel, payload).Err(); err != nil {
		n.Logger.Warn("realtime: publish change event", zap.Error(err))
	}
}

// Run subscribes to the shared channel and rebroadcasts events coming from
// other instances. Blocks; run it in a goroutine.
func (n *Notifier) Run(ctx context.Context) {
	if n.RDB == nil {
		return
	}
	sub := n.RDB.Subscribe(ctx, changesChannel)
	defer sub.Close()

	for msg := range sub.Channel() {
		var ev ChangeEvent
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			n.Logger.Warn("realtime: bad change event payload", zap.Error(err))
			continue
		}
		if ev.Origin == n.instance {
			continue // already broadcast locally
		}
		n.Hub.BroadcastRaw([]byte(msg.Payload))
	}
}

// NewRedis creates the Redis client for the change relay; nil when no address
// is configured.
func NewRedis(addr, password string, logger *zap.Logger) *redis.Client {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	logger.Info("realtime: redis relay enabled", zap.String("addr", addr))
	return rdb
}
