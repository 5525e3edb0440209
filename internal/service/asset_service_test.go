package service

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/labtrack/labtrack-service/internal/domain"
	"github.com/labtrack/labtrack-service/internal/events"
)

func TestAssetCreateValidation(t *testing.T) {
	f := newFixture(t)
	valid := AssetCreateInput{Name: "Scope", AssetCode: "A-1", Location: "Lab", Status: domain.AssetStatusActive, QRCode: "QR"}

	tests := []struct {
		name   string
		mutate func(*AssetCreateInput)
		code   string
	}{
		{"missing name", func(in *AssetCreateInput) { in.Name = " " }, "VALIDATION_FAILED"},
		{"missing qr", func(in *AssetCreateInput) { in.QRCode = "" }, "VALIDATION_FAILED"},
		{"bad status", func(in *AssetCreateInput) { in.Status = "BROKEN" }, "VALIDATION_FAILED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := f.assets.Create(context.Background(), f.admin, in)
			wantCode(t, err, tt.code)
		})
	}

	if _, err := f.assets.Create(context.Background(), f.admin, valid); err != nil {
		t.Fatal(err)
	}
	_, err := f.assets.Create(context.Background(), f.admin, valid)
	wantCode(t, err, "CONFLICT")
}

func TestAssetListPages(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for i := 0; i < 12; i++ {
		f.asset(t, fmt.Sprintf("A-%02d", i), domain.AssetStatusActive)
	}

	page, err := f.assets.List(ctx, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if page.Page != DefaultAssetPage || page.Limit != DefaultAssetLimit || len(page.Data) != 10 {
		t.Fatalf("defaults: page=%d limit=%d len=%d", page.Page, page.Limit, len(page.Data))
	}
	if page.Data[0].AssetCode != "A-11" {
		t.Errorf("first = %s, want newest A-11", page.Data[0].AssetCode)
	}

	page, err = f.assets.List(ctx, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Data) != 2 || page.Data[1].AssetCode != "A-00" {
		t.Errorf("page 2 = %+v", page.Data)
	}

	page, err = f.assets.List(ctx, 5, 10)
	if err != nil {
		t.Fatal(err)
	}
	if page.Data == nil || len(page.Data) != 0 {
		t.Errorf("past the end should be an empty, non-nil slice")
	}

	page, err = f.assets.List(ctx, 1, 5000)
	if err != nil {
		t.Fatal(err)
	}
	if page.Limit != MaxAssetLimit || len(page.Data) != 12 {
		t.Errorf("capped limit: limit=%d len=%d", page.Limit, len(page.Data))
	}

	for _, limit := range []int{3, MaxAssetLimit, math.MaxInt/2 + 1} {
		page, err = f.assets.List(ctx, math.MaxInt/2+1, limit)
		if err != nil {
			t.Fatalf("limit %d: %v", limit, err)
		}
		if page.Data == nil || len(page.Data) != 0 {
			t.Errorf("limit %d: huge page = %+v, want empty", limit, page.Data)
		}
	}
}

func TestAssetUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rec := &recorder{}
	f.dispatcher.Subscribe(events.EventAssetDeleted, rec.handle)

	asset := f.asset(t, "A-1", domain.AssetStatusActive)
	other := f.asset(t, "A-2", domain.AssetStatusActive)

	status := domain.AssetStatusUnderMaintenance
	location := "Lab 9"
	updated, err := f.assets.Update(ctx, asset.ID, AssetUpdateInput{Status: &status, Location: &location})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != status || updated.Location != location || updated.Name != asset.Name {
		t.Errorf("updated = %+v", updated)
	}

	dup := "A-2"
	_, err = f.assets.Update(ctx, asset.ID, AssetUpdateInput{AssetCode: &dup})
	wantCode(t, err, "CONFLICT")
	blank := ""
	_, err = f.assets.Update(ctx, asset.ID, AssetUpdateInput{Name: &blank})
	wantCode(t, err, "VALIDATION_FAILED")
	_, err = f.assets.Update(ctx, "missing", AssetUpdateInput{Location: &location})
	wantCode(t, err, "NOT_FOUND")

	f.ticket(t, "Broken", asset.ID, domain.TicketPriorityHigh)
	wantCode(t, f.assets.Delete(ctx, f.admin, asset.ID), "CONFLICT")
	wantCode(t, f.assets.Delete(ctx, f.admin, "missing"), "NOT_FOUND")
	if err := f.assets.Delete(ctx, f.admin, other.ID); err != nil {
		t.Fatal(err)
	}
	if got := rec.types(); len(got) != 1 || got[0] != events.EventAssetDeleted {
		t.Errorf("events = %v", got)
	}
}
