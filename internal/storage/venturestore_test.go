package storage

import (
	"errors"
	"testing"

	"github.com/sayedbaharun/aura/pkg/models"
)

func TestAddVenture(t *testing.T) {
	store := NewVentureStore(t.TempDir())

	v := models.Venture{ID: "v1", Name: "Aivant Realty", Color: "#4A90D9", Icon: "🏠"}
	if err := store.AddVenture(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetVenture("v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Aivant Realty" {
		t.Errorf("expected venture name preserved, got %q", got.Name)
	}
}

func TestAddVenture_Duplicate(t *testing.T) {
	store := NewVentureStore(t.TempDir())
	v := models.Venture{ID: "v1", Name: "Aivant Realty"}

	if err := store.AddVenture(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.AddVenture(v); err == nil {
		t.Fatal("expected error for duplicate ID")
	}
}

func TestGetVenture_NotFound(t *testing.T) {
	store := NewVentureStore(t.TempDir())
	_, err := store.GetVenture("missing")
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGetAllVentures_SortedByName(t *testing.T) {
	store := NewVentureStore(t.TempDir())
	for _, v := range []models.Venture{
		{ID: "v3", Name: "Zenith"},
		{ID: "v1", Name: "Aivant Realty"},
		{ID: "v2", Name: "MyDub"},
	} {
		if err := store.AddVenture(v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := store.GetAllVentures()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 ventures, got %d", len(got))
	}
	for i, want := range []string{"Aivant Realty", "MyDub", "Zenith"} {
		if got[i].Name != want {
			t.Errorf("position %d: expected %q, got %q", i, want, got[i].Name)
		}
	}
}

func TestVentureSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	store := NewVentureStore(dir)
	if err := store.AddVenture(models.Venture{ID: "v1", Name: "Aivant Realty"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fresh := NewVentureStore(dir)
	if err := fresh.Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := fresh.GetVenture("v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Aivant Realty" {
		t.Errorf("expected round-tripped venture, got %+v", got)
	}
}

func TestVentureLoadMissingFile(t *testing.T) {
	store := NewVentureStore(t.TempDir())
	if err := store.Load(); err != nil {
		t.Fatalf("missing file should load as empty store, got %v", err)
	}
	ventures, err := store.GetAllVentures()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ventures) != 0 {
		t.Errorf("expected empty store, got %d ventures", len(ventures))
	}
}
