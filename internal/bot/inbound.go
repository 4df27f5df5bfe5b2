package bot

import (
	"context"
	"encoding/json"
	"fmt"
)

// SubjectInbound carries chat messages forwarded from other gateways.
const SubjectInbound = "swarm.mitra.chat.inbound"

// InboundEvent is the payload on SubjectInbound.
type InboundEvent struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// ParseInboundEvent accepts either a flat event or the forwarder's wrapper
// with the fields under "metadata".
func ParseInboundEvent(data []byte) (*InboundEvent, error) {
	var evt InboundEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, fmt.Errorf("parse inbound event: %w", err)
	}

	if evt.ChatID == "" {
		var wrapper struct {
			Metadata map[string]string `json:"metadata"`
		}
		if err := json.Unmarshal(data, &wrapper); err == nil {
			evt.ChatID = wrapper.Metadata["chat_id"]
			evt.Text = wrapper.Metadata["text"]
		}
	}

	if evt.ChatID == "" {
		return nil, fmt.Errorf("inbound event missing chat_id")
	}
	return &evt, nil
}

// HandleInbound is the NATS handler for SubjectInbound.
func (b *Bot) HandleInbound(subject string, data []byte) {
	evt, err := ParseInboundEvent(data)
	if err != nil {
		b.logger.Error("failed to parse inbound message", "subject", subject, "error", err)
		return
	}
	go b.Handle(context.Background(), evt.ChatID, evt.Text)
}
