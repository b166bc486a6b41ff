package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/assetdesk/inventory-api/internal/core/domain"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

type stubAssetService struct {
	createFn func(ctx context.Context, input ports.CreateAssetInput) (*ports.AssetDetail, error)
	updateFn func(ctx context.Context, input ports.UpdateAssetInput) (*ports.AssetDetail, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubAssetService) Create(ctx context.Context, input ports.CreateAssetInput) (*ports.AssetDetail, error) {
	return s.createFn(ctx, input)
}

func (s *stubAssetService) List(context.Context) ([]ports.AssetDetail, error) { return nil, nil }

func (s *stubAssetService) Get(context.Context, string) (*ports.AssetDetail, error) {
	return nil, domain.ErrAssetNotFound
}

func (s *stubAssetService) Update(ctx context.Context, input ports.UpdateAssetInput) (*ports.AssetDetail, error) {
	return s.updateFn(ctx, input)
}

func (s *stubAssetService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func testDetail() *ports.AssetDetail {
	return &ports.AssetDetail{
		Asset: domain.Asset{
			ID:           "asset_1",
			AssetName:    "ThinkPad X1",
			AssetType:    domain.TypeLaptop,
			SerialNumber: "SN-001",
			Brand:        "Lenovo",
			Model:        "X1 Carbon",
			PurchaseDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Condition:    domain.DefaultCondition,
			Status:       domain.DefaultStatus,
		},
	}
}

func TestAssetHandler_Create(t *testing.T) {
	var got ports.CreateAssetInput
	h := NewAssetHandler(&stubAssetService{
		createFn: func(_ context.Context, input ports.CreateAssetInput) (*ports.AssetDetail, error) {
			got = input
			return testDetail(), nil
		},
	})

	body := `{"asset_name":"ThinkPad X1","asset_type":"Laptop","serial_number":"SN-001","brand":"Lenovo","model":"X1 Carbon","purchase_date":"2025-03-10"}`
	c, rec := jsonContext(http.MethodPost, "/api/assets", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.PurchaseDate != time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("purchase date not parsed: %v", got.PurchaseDate)
	}

	var resp envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success envelope")
	}
}

func TestAssetHandler_Create_BadInput(t *testing.T) {
	h := NewAssetHandler(&stubAssetService{
		createFn: func(context.Context, ports.CreateAssetInput) (*ports.AssetDetail, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	})

	cases := []struct {
		name string
		body string
	}{
		{"UnknownType", `{"asset_name":"X","asset_type":"Spaceship","serial_number":"SN-001","brand":"B","model":"M","purchase_date":"2025-03-10"}`},
		{"BadStatus", `{"asset_name":"X","asset_type":"Laptop","serial_number":"SN-001","brand":"B","model":"M","purchase_date":"2025-03-10","status":"Exploded"}`},
		{"BadDate", `{"asset_name":"X","asset_type":"Laptop","serial_number":"SN-001","brand":"B","model":"M","purchase_date":"next tuesday"}`},
		{"MissingSerial", `{"asset_name":"X","asset_type":"Laptop","brand":"B","model":"M","purchase_date":"2025-03-10"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := jsonContext(http.MethodPost, "/api/assets", tc.body)

			err := h.Create(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestAssetHandler_Update_PassesRoleAndFields(t *testing.T) {
	var got ports.UpdateAssetInput
	h := NewAssetHandler(&stubAssetService{
		updateFn: func(_ context.Context, input ports.UpdateAssetInput) (*ports.AssetDetail, error) {
			got = input
			return testDetail(), nil
		},
	})

	c, rec := jsonContext(http.MethodPut, "/api/assets/asset_1", `{"status":"Damaged","brand":"NewBrand"}`)
	c.SetParamNames("id")
	c.SetParamValues("asset_1")
	c.Set("user_id", "user_1")
	c.Set("role", domain.RoleManager)

	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.ID != "asset_1" || got.Role != domain.RoleManager {
		t.Fatalf("service called with wrong identity: %+v", got)
	}
	if got.Fields["status"] != "Damaged" || got.Fields["brand"] != "NewBrand" {
		t.Fatalf("raw field map not forwarded: %v", got.Fields)
	}
}

func TestAssetHandler_Update_MissingClaims(t *testing.T) {
	h := NewAssetHandler(&stubAssetService{
		updateFn: func(context.Context, ports.UpdateAssetInput) (*ports.AssetDetail, error) {
			t.Fatal("service must not be called without claims")
			return nil, nil
		},
	})

	c, _ := jsonContext(http.MethodPut, "/api/assets/asset_1", `{"status":"Damaged"}`)
	c.SetParamNames("id")
	c.SetParamValues("asset_1")

	err := h.Update(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAssetHandler_Delete(t *testing.T) {
	h := NewAssetHandler(&stubAssetService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "asset_1" {
				t.Fatalf("wrong id: %s", id)
			}
			return nil
		},
	})

	c, rec := jsonContext(http.MethodDelete, "/api/assets/asset_1", "")
	c.SetParamNames("id")
	c.SetParamValues("asset_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Data == nil || len(resp.Data) != 0 {
		t.Fatalf("expected empty data object, got %s", rec.Body.String())
	}
}

func TestAssetHandler_Delete_NotFoundPropagates(t *testing.T) {
	h := NewAssetHandler(&stubAssetService{
		deleteFn: func(context.Context, string) error { return domain.ErrAssetNotFound },
	})

	c, _ := jsonContext(http.MethodDelete, "/api/assets/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); err != domain.ErrAssetNotFound {
		t.Fatalf("expected ErrAssetNotFound to propagate, got %v", err)
	}
}
