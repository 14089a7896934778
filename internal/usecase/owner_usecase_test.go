package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func newOwnerFixture() (OwnerUsecase, *fakeOwnerRepo) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	repo := newFakeOwnerRepo()
	return NewOwnerUsecase(log, repo), repo
}

func TestCreateOwnerRejectsDuplicateDNI(t *testing.T) {
	u, _ := newOwnerFixture()

	req := &dto.CreateOwnerRequest{
		Name:    "Marta López",
		DNI:     "11111111A",
		Address: "Calle Mayor 1",
		Phone:   "600000000",
		Email:   "marta@example.com",
	}
	if _, err := u.Create(context.Background(), req); err != nil {
		t.Fatalf("first create: %v", err)
	}

	second := *req
	second.Name = "Otra Persona"
	if _, err := u.Create(context.Background(), &second); !errors.Is(err, ErrDNIAlreadyRegistered) {
		t.Fatalf("expected ErrDNIAlreadyRegistered, got %v", err)
	}
}

func TestOwnerLookupAndUpdate(t *testing.T) {
	u, _ := newOwnerFixture()

	created, err := u.Create(context.Background(), &dto.CreateOwnerRequest{
		Name:    "Marta López",
		DNI:     "11111111A",
		Address: "Calle Mayor 1",
		Phone:   "600000000",
		Email:   "marta@example.com",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := u.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found.DNI != "11111111A" {
		t.Fatalf("unexpected owner returned: %+v", found)
	}

	updated, err := u.Update(context.Background(), created.ID, &dto.UpdateOwnerRequest{
		Name:    "Marta López",
		DNI:     "11111111A",
		Address: "Calle Nueva 3",
		Phone:   "600000001",
		Email:   "marta@example.com",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Address != "Calle Nueva 3" {
		t.Fatalf("address not updated: %s", updated.Address)
	}
}

func TestOwnerNotFound(t *testing.T) {
	u, _ := newOwnerFixture()

	if _, err := u.GetByID(context.Background(), uuid.New()); !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestOwnerSearchByName(t *testing.T) {
	u, repo := newOwnerFixture()

	for _, req := range []*dto.CreateOwnerRequest{
		{Name: "Marta López", DNI: "11111111A", Address: "Calle Mayor 1", Phone: "600000000", Email: "marta@example.com"},
		{Name: "Juan García", DNI: "22222222B", Address: "Calle Menor 2", Phone: "600000001", Email: "juan@example.com"},
	} {
		if _, err := u.Create(context.Background(), req); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if len(repo.owners) != 2 {
		t.Fatalf("expected 2 seeded owners")
	}

	result, err := u.Search(context.Background(), repository.OwnerFilter{Name: "Marta"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if result.Total != 1 || result.Owners[0].DNI != "11111111A" {
		t.Fatalf("unexpected search result: %+v", result)
	}
}
