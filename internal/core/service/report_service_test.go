package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"

	"github.com/assetdesk/inventory-api/internal/core/domain"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

// stubReportCache stores JSON-encoded entries, matching the Redis-backed
// implementation's behavior closely enough for cache-hit assertions.
type stubReportCache struct {
	entries map[string][]byte
	sets    int
}

func newStubReportCache() *stubReportCache {
	return &stubReportCache{entries: make(map[string][]byte)}
}

func (c *stubReportCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *stubReportCache) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	c.sets++
	return nil
}

func seedAsset(t *testing.T, repo *stubAssetRepo, assetType, serial, status string, location *string) *domain.Asset {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.Asset{
		AssetName:    assetType + " " + serial,
		AssetType:    assetType,
		SerialNumber: serial,
		Brand:        "Acme",
		Model:        "M1",
		Condition:    domain.DefaultCondition,
		Status:       status,
		Location:     location,
	})
	if err != nil {
		t.Fatalf("seed asset %s: %v", serial, err)
	}
	return created
}

func TestReportService_AssetsByType(t *testing.T) {
	repo := newStubAssetRepo()
	seedAsset(t, repo, domain.TypeLaptop, "SN-1", domain.StatusAvailable, nil)
	seedAsset(t, repo, domain.TypeLaptop, "SN-2", domain.StatusInUse, nil)
	seedAsset(t, repo, domain.TypeChair, "SN-3", domain.StatusAvailable, nil)

	svc := NewReportService(repo, newStubUserRepo(), nil, zerolog.Nop())

	groups, err := svc.AssetsByType(context.Background())
	if err != nil {
		t.Fatalf("AssetsByType: %v", err)
	}
	want := []ports.GroupCount{
		{Key: domain.TypeChair, Count: 1},
		{Key: domain.TypeLaptop, Count: 2},
	}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %v", len(want), groups)
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Fatalf("group %d: want %+v, got %+v", i, want[i], groups[i])
		}
	}
}

func TestReportService_AssetsByType_CacheHit(t *testing.T) {
	repo := newStubAssetRepo()
	seedAsset(t, repo, domain.TypeLaptop, "SN-1", domain.StatusAvailable, nil)

	cache := newStubReportCache()
	svc := NewReportService(repo, newStubUserRepo(), cache, zerolog.Nop())

	if _, err := svc.AssetsByType(context.Background()); err != nil {
		t.Fatalf("first read: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	// A second asset lands after the cache fill; the cached report must be
	// served until it expires, without touching the repository again.
	seedAsset(t, repo, domain.TypeLaptop, "SN-2", domain.StatusAvailable, nil)

	groups, err := svc.AssetsByType(context.Background())
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if repo.groupByTypeCalls != 1 {
		t.Fatalf("expected one repository aggregation, got %d", repo.groupByTypeCalls)
	}
	if len(groups) != 1 || groups[0].Count != 1 {
		t.Fatalf("expected stale cached report, got %v", groups)
	}
}

func TestReportService_AssetsByLocation(t *testing.T) {
	repo := newStubAssetRepo()
	hq := "HQ"
	seedAsset(t, repo, domain.TypeDesktop, "SN-1", domain.StatusAvailable, &hq)
	seedAsset(t, repo, domain.TypeDesktop, "SN-2", domain.StatusAvailable, &hq)
	seedAsset(t, repo, domain.TypePrinter, "SN-3", domain.StatusAvailable, nil)

	svc := NewReportService(repo, newStubUserRepo(), nil, zerolog.Nop())

	groups, err := svc.AssetsByLocation(context.Background())
	if err != nil {
		t.Fatalf("AssetsByLocation: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 location groups, got %v", groups)
	}
	if groups[0].Key != "" || groups[0].Count != 1 {
		t.Fatalf("expected unset-location bucket first, got %+v", groups[0])
	}
	if groups[1].Key != "HQ" || groups[1].Count != 2 {
		t.Fatalf("expected HQ bucket, got %+v", groups[1])
	}
}

func TestReportService_DamagedAssets(t *testing.T) {
	repo := newStubAssetRepo()
	users := newStubUserRepo()

	owner, err := users.Create(context.Background(), &domain.User{Name: "Mia", Email: "mia@example.com", Role: domain.RoleViewer})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	seedAsset(t, repo, domain.TypeLaptop, "SN-1", domain.StatusAvailable, nil)
	damaged := seedAsset(t, repo, domain.TypeRouter, "SN-2", domain.StatusDamaged, nil)
	damaged.AssignedTo = &owner.ID
	if _, err := repo.Replace(context.Background(), damaged); err != nil {
		t.Fatalf("assign damaged asset: %v", err)
	}

	svc := NewReportService(repo, users, nil, zerolog.Nop())

	details, err := svc.DamagedAssets(context.Background())
	if err != nil {
		t.Fatalf("DamagedAssets: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 damaged asset, got %d", len(details))
	}
	if details[0].Asset.SerialNumber != "SN-2" {
		t.Fatalf("wrong asset in report: %+v", details[0].Asset)
	}
	if details[0].Assignee == nil || details[0].Assignee.Name != "Mia" {
		t.Fatalf("expected resolved assignee, got %+v", details[0].Assignee)
	}
}

func TestReportService_LowStock(t *testing.T) {
	repo := newStubAssetRepo()
	// Six available laptops sit above the default threshold; one available
	// chair sits below it. In Use assets never count toward stock.
	for i := 0; i < 6; i++ {
		seedAsset(t, repo, domain.TypeLaptop, "L-"+string(rune('0'+i)), domain.StatusAvailable, nil)
	}
	seedAsset(t, repo, domain.TypeChair, "C-0", domain.StatusAvailable, nil)
	seedAsset(t, repo, domain.TypeChair, "C-1", domain.StatusInUse, nil)

	svc := NewReportService(repo, newStubUserRepo(), nil, zerolog.Nop())

	groups, err := svc.LowStock(context.Background(), 0)
	if err != nil {
		t.Fatalf("LowStock: %v", err)
	}
	if len(groups) != 1 || groups[0].Key != domain.TypeChair || groups[0].Count != 1 {
		t.Fatalf("expected only the chair group below default threshold, got %v", groups)
	}

	// A threshold of 10 pulls the laptops in too.
	groups, err = svc.LowStock(context.Background(), 10)
	if err != nil {
		t.Fatalf("LowStock(10): %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected both groups under threshold 10, got %v", groups)
	}
}
