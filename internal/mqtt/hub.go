package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"petdiary/internal/diary"
	"petdiary/internal/domain"
)

const defaultConnectWait = 3 * time.Second

type HubConfig struct {
	BrokerURL   string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	// ConnectWait bounds how long Start waits for the first connection.
	ConnectWait time.Duration
}

type DiaryService interface {
	GenerateDiary(ctx context.Context, raw domain.RawObservation) domain.DiaryResult
}

// DiaryMessage is published on {prefix}/pet/{petId}/diary.
type DiaryMessage struct {
	PetID   string `json:"petId"`
	Success bool   `json:"success"`
	domain.DiaryResult
}

// Hub turns pet telemetry messages into diary messages.
type Hub struct {
	cfg    HubConfig
	client paho.Client
	diary  DiaryService
	logger *slog.Logger
	ctx    context.Context
}

func NewHub(cfg HubConfig, svc DiaryService, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		cfg:    cfg,
		diary:  svc,
		logger: logger,
		ctx:    context.Background(),
	}
}

func (h *Hub) Start(ctx context.Context) error {
	h.ctx = ctx
	onlineTopic := TopicOnline(h.cfg.TopicPrefix, h.cfg.ClientID)
	opts := paho.NewClientOptions().
		AddBroker(h.cfg.BrokerURL).
		SetClientID(h.cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetOrderMatters(false).
		SetWill(onlineTopic, "0", 1, true)

	if h.cfg.Username != "" {
		opts.SetUsername(h.cfg.Username)
		opts.SetPassword(h.cfg.Password)
	}

	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		h.logger.Error("mqtt connection lost", "error", err)
	})
	// Subscriptions are not kept across clean-session reconnects.
	opts.SetOnConnectHandler(func(c paho.Client) {
		if err := h.subscribe(c); err != nil {
			h.logger.Error("mqtt subscribe failed", "error", err)
			return
		}
		c.Publish(onlineTopic, 1, true, "1")
		h.logger.Info("mqtt connected", "telemetry_topic", TopicPetTelemetry(h.cfg.TopicPrefix))
	})

	h.client = paho.NewClient(opts)
	token := h.client.Connect()
	if token.WaitTimeout(h.connectWait()) {
		if err := token.Error(); err != nil {
			return err
		}
	} else {
		// paho keeps retrying; OnConnect subscribes once the broker is up.
		h.logger.Warn("mqtt broker not reachable yet, retrying in background", "broker", h.cfg.BrokerURL)
		go func() {
			if token.Wait() && token.Error() != nil {
				h.logger.Error("mqtt connect failed", "error", token.Error())
			}
		}()
	}

	go func() {
		<-ctx.Done()
		if h.client.IsConnectionOpen() {
			if token := h.client.Publish(onlineTopic, 1, true, "0"); token.WaitTimeout(time.Second) && token.Error() != nil {
				h.logger.Warn("publish offline status failed", "error", token.Error())
			}
		}
		h.client.Disconnect(250)
	}()

	return nil
}

func (h *Hub) connectWait() time.Duration {
	if h.cfg.ConnectWait > 0 {
		return h.cfg.ConnectWait
	}
	return defaultConnectWait
}

func (h *Hub) subscribe(c paho.Client) error {
	if token := c.Subscribe(TopicPetTelemetry(h.cfg.TopicPrefix), 1, h.handleTelemetry); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

func (h *Hub) handleTelemetry(c paho.Client, msg paho.Message) {
	topic, body, err := h.Process(h.ctx, msg.Topic(), msg.Payload())
	if err != nil {
		h.logger.Warn("skip invalid telemetry topic", "topic", msg.Topic(), "error", err)
		return
	}
	if token := c.Publish(topic, 1, false, body); token.Wait() && token.Error() != nil {
		h.logger.Error("publish diary failed", "topic", topic, "error", token.Error())
	}
}

// Process generates the diary for one telemetry message and returns the
// topic and body to publish. Only an unparseable topic is an error: a bad
// payload is handled as the empty observation.
func (h *Hub) Process(ctx context.Context, topic string, payload []byte) (string, []byte, error) {
	petID, err := ParsePetID(topic, h.cfg.TopicPrefix)
	if err != nil {
		return "", nil, err
	}

	raw, err := diary.DecodeRaw(payload)
	if err != nil {
		h.logger.Info("invalid telemetry payload, using defaults", "pet_id", petID, "error", err)
		raw = domain.RawObservation{}
	}
	if len(raw.RequestID) == 0 {
		raw.RequestID, _ = json.Marshal(uuid.NewString())
	}

	result := h.diary.GenerateDiary(ctx, raw)
	body, err := json.Marshal(DiaryMessage{PetID: petID, Success: true, DiaryResult: result})
	if err != nil {
		return "", nil, err
	}
	return TopicDiary(h.cfg.TopicPrefix, petID), body, nil
}
