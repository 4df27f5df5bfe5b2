package bot

import (
	"testing"
	"time"

	"github.com/MikeSquared-Agency/mitra/internal/store"
)

func TestParseInboundEvent_Flat(t *testing.T) {
	evt, err := ParseInboundEvent([]byte(`{"chat_id":"99","text":"/videos"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evt.ChatID != "99" || evt.Text != "/videos" {
		t.Errorf("unexpected event: %+v", evt)
	}
}

func TestParseInboundEvent_MetadataWrapper(t *testing.T) {
	raw := `{
		"event_type": "chat.inbound",
		"metadata": {"chat_id": "100", "text": "पाणी किती द्यावे?"}
	}`

	evt, err := ParseInboundEvent([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evt.ChatID != "100" {
		t.Errorf("expected chat_id 100, got %q", evt.ChatID)
	}
	if evt.Text != "पाणी किती द्यावे?" {
		t.Errorf("unexpected text %q", evt.Text)
	}
}

func TestParseInboundEvent_Invalid(t *testing.T) {
	if _, err := ParseInboundEvent([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid json")
	}
	if _, err := ParseInboundEvent([]byte(`{"text":"hi"}`)); err == nil {
		t.Error("expected error for missing chat_id")
	}
}

func TestHandleInbound_DispatchesToHandle(t *testing.T) {
	b, snd, _, _ := newTestBot(store.New())

	b.HandleInbound(SubjectInbound, []byte(`{"chat_id":"5","text":"/help"}`))

	deadline := time.Now().Add(2 * time.Second)
	for len(snd.messages()) == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	msgs := snd.messages()
	if len(msgs) != 1 || msgs[0].chatID != "5" || msgs[0].text != helpMessage {
		t.Errorf("unexpected messages: %+v", msgs)
	}
}

func TestHandleInbound_BadPayloadIgnored(t *testing.T) {
	b, snd, _, _ := newTestBot(store.New())

	b.HandleInbound(SubjectInbound, []byte(`{}`))

	time.Sleep(20 * time.Millisecond)
	if len(snd.messages()) != 0 {
		t.Errorf("expected no reply, got %v", snd.messages())
	}
}
