package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"vetclinic-backend/internal/delivery/dto"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func newTreatmentFixture() (TreatmentUsecase, *staticPriceCatalog) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	catalog := &staticPriceCatalog{}
	return NewTreatmentUsecase(log, newFakeTreatmentRepo(), catalog), catalog
}

func TestCreateTreatmentInvalidatesCatalog(t *testing.T) {
	u, catalog := newTreatmentFixture()

	req := &dto.CreateTreatmentRequest{
		Type:  "Tratamientos básicos",
		Name:  "Vacunación",
		Price: decimal.NewFromFloat(30.0),
	}
	if _, err := u.Create(context.Background(), req); err != nil {
		t.Fatalf("create: %v", err)
	}
	if catalog.invalidations != 1 {
		t.Fatalf("catalog invalidated %d times, want 1", catalog.invalidations)
	}

	if _, err := u.Create(context.Background(), req); !errors.Is(err, ErrTreatmentAlreadyExists) {
		t.Fatalf("expected ErrTreatmentAlreadyExists, got %v", err)
	}
	if catalog.invalidations != 1 {
		t.Fatalf("failed create must not invalidate the catalog")
	}
}

func TestUpdateTreatmentPrice(t *testing.T) {
	u, catalog := newTreatmentFixture()

	if _, err := u.Create(context.Background(), &dto.CreateTreatmentRequest{
		Type:  "Tratamientos básicos",
		Name:  "Vacunación",
		Price: decimal.NewFromFloat(30.0),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	resp, err := u.Update(context.Background(), "Vacunación", &dto.UpdateTreatmentRequest{
		Type:  "Tratamientos básicos",
		Price: decimal.NewFromFloat(35.0),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !resp.Price.Equal(decimal.NewFromFloat(35.0)) {
		t.Fatalf("price = %s, want 35", resp.Price)
	}
	if catalog.invalidations != 2 {
		t.Fatalf("catalog invalidated %d times, want 2", catalog.invalidations)
	}
}

func TestDeleteTreatmentNotFound(t *testing.T) {
	u, catalog := newTreatmentFixture()

	if err := u.Delete(context.Background(), "No existe"); !errors.Is(err, ErrTreatmentNotFound) {
		t.Fatalf("expected ErrTreatmentNotFound, got %v", err)
	}
	if catalog.invalidations != 0 {
		t.Fatalf("failed delete must not invalidate the catalog")
	}
}

func TestGetTreatmentByName(t *testing.T) {
	u, _ := newTreatmentFixture()

	if _, err := u.Create(context.Background(), &dto.CreateTreatmentRequest{
		Type:  "Cirugía",
		Name:  "Castración",
		Price: decimal.NewFromFloat(150.0),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	resp, err := u.GetByName(context.Background(), "Castración")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.Name != "Castración" || !resp.Price.Equal(decimal.NewFromFloat(150.0)) {
		t.Fatalf("unexpected treatment: %+v", resp)
	}
}
