package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/labtrack/labtrack-service/internal/domain"
	"github.com/labtrack/labtrack-service/internal/events"
)

type fakePublisher struct {
	channel  string
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(_ context.Context, channel string, payload []byte) error {
	p.channel = channel
	p.payloads = append(p.payloads, payload)
	return p.err
}

func TestNotificationServiceFansOut(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	f := newFixture(t)
	pub := &fakePublisher{}
	NewNotificationService(f.dispatcher, pub, "labtrack:events", zap.New(core)).RegisterHandlers()

	asset := f.asset(t, "A-1", domain.AssetStatusActive)
	f.ticket(t, "Broken", asset.ID, domain.TicketPriorityHigh)

	if pub.channel != "labtrack:events" || len(pub.payloads) != 2 {
		t.Fatalf("published %d payloads to %q", len(pub.payloads), pub.channel)
	}
	var decoded events.Event
	if err := json.Unmarshal(pub.payloads[1], &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Type != events.EventTicketCreated || decoded.Actor.UserID != f.eng.ID || decoded.ID == "" {
		t.Errorf("decoded = %+v", decoded)
	}
	if logs.FilterMessage(string(events.EventAssetCreated)).Len() != 1 {
		t.Errorf("asset_created not logged")
	}
}

func TestNotificationPublishFailureDoesNotFailRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	f := newFixture(t)
	pub := &fakePublisher{err: errors.New("redis down")}
	NewNotificationService(f.dispatcher, pub, "labtrack:events", zap.New(core)).RegisterHandlers()

	if _, err := f.assets.Create(context.Background(), f.admin, AssetCreateInput{
		Name: "Scope", AssetCode: "A-1", Location: "Lab", Status: domain.AssetStatusActive, QRCode: "QR",
	}); err != nil {
		t.Fatalf("create should succeed when publish fails: %v", err)
	}
	if logs.FilterMessage("publish event").Len() != 1 {
		t.Errorf("publish failure not logged")
	}
}

func TestNotificationWithoutPublisher(t *testing.T) {
	f := newFixture(t)
	NewNotificationService(f.dispatcher, nil, "", zap.NewNop()).RegisterHandlers()
	f.asset(t, "A-1", domain.AssetStatusActive)
}
