package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"vetclinic-backend/config"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type appointmentFixture struct {
	usecase      AppointmentUsecase
	appointments *fakeAppointmentRepo
	invoices     *fakeInvoiceRepo
	audit        *recordingAudit
	ownerID      uuid.UUID
	animalID     uuid.UUID
}

func newAppointmentFixture(t *testing.T, invoiceCfg config.InvoiceConfig) *appointmentFixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	owners := newFakeOwnerRepo()
	animals := newFakeAnimalRepo()
	appointments := newFakeAppointmentRepo()
	invoices := newFakeInvoiceRepo()
	audit := &recordingAudit{}
	catalog := &staticPriceCatalog{prices: map[string]decimal.Decimal{
		"Vacunación":       decimal.NewFromFloat(30.0),
		"Limpieza bucal":   decimal.NewFromFloat(100.0),
		"Cirugía cardíaca": decimal.NewFromFloat(500.0),
	}}

	owner := &entity.Owner{Name: "Marta López", DNI: "11111111A", Address: "Calle Mayor 1", Phone: "600000000", Email: "marta@example.com"}
	if err := owners.Create(context.Background(), owner); err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	animal := &entity.Animal{Name: "Rex", Species: "dog", Breed: "Labrador", Age: 4, Status: entity.AnimalStatusAlive, OwnerID: owner.ID}
	if err := animals.Create(context.Background(), animal); err != nil {
		t.Fatalf("seed animal: %v", err)
	}

	clinicCfg := config.ClinicConfig{
		Rooms:         []string{"1", "2", "3"},
		ClosedWeekday: 0,
	}

	return &appointmentFixture{
		usecase:      NewAppointmentUsecase(log, clinicCfg, invoiceCfg, appointments, owners, animals, invoices, catalog, audit),
		appointments: appointments,
		invoices:     invoices,
		audit:        audit,
		ownerID:      owner.ID,
		animalID:     animal.ID,
	}
}

func (f *appointmentFixture) book(t *testing.T, date, timeOfDay string) *dto.AppointmentResponse {
	t.Helper()
	resp, err := f.usecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		Date:      date,
		Time:      timeOfDay,
		Treatment: "Revisión general",
		OwnerID:   f.ownerID,
		AnimalID:  f.animalID,
	})
	if err != nil {
		t.Fatalf("book %s %s: %v", date, timeOfDay, err)
	}
	return resp
}

func TestCreateAppointmentFillsRoomsInOrder(t *testing.T) {
	f := newAppointmentFixture(t, config.InvoiceConfig{})

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		resp := f.book(t, "2026-09-07", "10:00")
		if seen[resp.ConsultationRoom] {
			t.Fatalf("room %s assigned twice for the same slot", resp.ConsultationRoom)
		}
		seen[resp.ConsultationRoom] = true
	}

	_, err := f.usecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		Date:      "2026-09-07",
		Time:      "10:00",
		Treatment: "Revisión general",
		OwnerID:   f.ownerID,
		AnimalID:  f.animalID,
	})
	if !errors.Is(err, ErrNoRoomAvailable) {
		t.Fatalf("expected ErrNoRoomAvailable with all rooms taken, got %v", err)
	}

	// A different time on the same day is a different slot entirely
	resp := f.book(t, "2026-09-07", "10:30")
	if resp.ConsultationRoom != "1" {
		t.Fatalf("expected first room for a fresh slot, got %s", resp.ConsultationRoom)
	}
}

func TestCreateAppointmentRejectsClosedDay(t *testing.T) {
	f := newAppointmentFixture(t, config.InvoiceConfig{})

	// 2026-09-06 is a Sunday
	_, err := f.usecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		Date:      "2026-09-06",
		Time:      "10:00",
		Treatment: "Revisión general",
		OwnerID:   f.ownerID,
		AnimalID:  f.animalID,
	})
	if !errors.Is(err, ErrClinicClosed) {
		t.Fatalf("expected ErrClinicClosed, got %v", err)
	}
	if len(f.appointments.appointments) != 0 {
		t.Fatalf("closed-day booking must not persist anything")
	}
}

func TestCreateAppointmentUnknownOwnerAndAnimal(t *testing.T) {
	f := newAppointmentFixture(t, config.InvoiceConfig{})

	_, err := f.usecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		Date:      "2026-09-07",
		Time:      "10:00",
		Treatment: "Revisión general",
		OwnerID:   uuid.New(),
		AnimalID:  f.animalID,
	})
	if !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}

	_, err = f.usecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		Date:      "2026-09-07",
		Time:      "10:00",
		Treatment: "Revisión general",
		OwnerID:   f.ownerID,
		AnimalID:  uuid.New(),
	})
	if !errors.Is(err, ErrAnimalNotFound) {
		t.Fatalf("expected ErrAnimalNotFound, got %v", err)
	}
}

func TestRescheduleKeepsRoomWhenSlotUnchanged(t *testing.T) {
	f := newAppointmentFixture(t, config.InvoiceConfig{})

	booked := f.book(t, "2026-09-07", "10:00")

	resp, err := f.usecase.Update(context.Background(), booked.ID, &dto.UpdateAppointmentRequest{
		Date:      "2026-09-07",
		Time:      "10:00",
		Treatment: "Revisión general",
		Reason:    "updated notes",
	})
	if err != nil {
		t.Fatalf("reschedule to the same slot: %v", err)
	}
	if resp.ConsultationRoom != booked.ConsultationRoom {
		t.Fatalf("room shuffled on unchanged slot: %s -> %s", booked.ConsultationRoom, resp.ConsultationRoom)
	}
}

func TestRescheduleMovesToFreeRoom(t *testing.T) {
	f := newAppointmentFixture(t, config.InvoiceConfig{})

	blocker := f.book(t, "2026-09-07", "10:00")
	moving := f.book(t, "2026-09-07", "11:00")
	if blocker.ConsultationRoom != moving.ConsultationRoom {
		t.Fatalf("fixture expects both bookings in the first room")
	}

	resp, err := f.usecase.Update(context.Background(), moving.ID, &dto.UpdateAppointmentRequest{
		Date:      "2026-09-07",
		Time:      "10:00",
		Treatment: "Revisión general",
	})
	if err != nil {
		t.Fatalf("reschedule into a contested slot: %v", err)
	}
	if resp.ConsultationRoom == blocker.ConsultationRoom {
		t.Fatalf("reschedule landed in an occupied room")
	}
}

func TestCompleteAppointmentCreatesInvoice(t *testing.T) {
	f := newAppointmentFixture(t, config.InvoiceConfig{})

	booked := f.book(t, "2026-09-07", "10:00")

	invoice, err := f.usecase.Complete(context.Background(), booked.ID, &dto.CompleteAppointmentRequest{
		Treatments:    []string{"Vacunación", "Limpieza bucal"},
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	want := decimal.NewFromFloat(130.0)
	if !invoice.TotalPrice.Equal(want) {
		t.Fatalf("total price = %s, want %s", invoice.TotalPrice, want)
	}
	if invoice.Paid {
		t.Fatalf("fresh invoice must be unpaid")
	}
	if invoice.AppointmentID != booked.ID {
		t.Fatalf("invoice bound to wrong appointment")
	}
	if len(f.audit.actions) == 0 || f.audit.actions[len(f.audit.actions)-1] != "appointment.completed" {
		t.Fatalf("expected appointment.completed audit entry, got %v", f.audit.actions)
	}
}

func TestCompleteAppointmentUnknownTreatmentCostsNothing(t *testing.T) {
	f := newAppointmentFixture(t, config.InvoiceConfig{})

	booked := f.book(t, "2026-09-07", "10:00")

	invoice, err := f.usecase.Complete(context.Background(), booked.ID, &dto.CompleteAppointmentRequest{
		Treatments:    []string{"Vacunación", "Acupuntura equina"},
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	want := decimal.NewFromFloat(30.0)
	if !invoice.TotalPrice.Equal(want) {
		t.Fatalf("total price = %s, want %s (unknown names contribute zero)", invoice.TotalPrice, want)
	}
}

func TestCompleteAppointmentAppliesTax(t *testing.T) {
	f := newAppointmentFixture(t, config.InvoiceConfig{
		TaxEnabled: true,
		TaxRate:    decimal.RequireFromString("0.21"),
	})

	booked := f.book(t, "2026-09-07", "10:00")

	invoice, err := f.usecase.Complete(context.Background(), booked.ID, &dto.CompleteAppointmentRequest{
		Treatments:    []string{"Vacunación"},
		PaymentMethod: "transfer",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	want := decimal.RequireFromString("36.30")
	if !invoice.TotalPrice.Equal(want) {
		t.Fatalf("taxed total = %s, want %s", invoice.TotalPrice, want)
	}
}

func TestCompleteAppointmentTwice(t *testing.T) {
	f := newAppointmentFixture(t, config.InvoiceConfig{})

	booked := f.book(t, "2026-09-07", "10:00")

	if _, err := f.usecase.Complete(context.Background(), booked.ID, &dto.CompleteAppointmentRequest{
		Treatments:    []string{"Vacunación"},
		PaymentMethod: "cash",
	}); err != nil {
		t.Fatalf("first complete: %v", err)
	}

	_, err := f.usecase.Complete(context.Background(), booked.ID, &dto.CompleteAppointmentRequest{
		Treatments:    []string{"Vacunación"},
		PaymentMethod: "cash",
	})
	if !errors.Is(err, ErrAppointmentCompleted) {
		t.Fatalf("expected ErrAppointmentCompleted, got %v", err)
	}
	if len(f.invoices.invoices) != 1 {
		t.Fatalf("second completion must not create another invoice, have %d", len(f.invoices.invoices))
	}
}

func TestCompletedAppointmentIsFrozen(t *testing.T) {
	f := newAppointmentFixture(t, config.InvoiceConfig{})

	booked := f.book(t, "2026-09-07", "10:00")
	if _, err := f.usecase.Complete(context.Background(), booked.ID, &dto.CompleteAppointmentRequest{
		Treatments:    []string{"Vacunación"},
		PaymentMethod: "cash",
	}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	_, err := f.usecase.Update(context.Background(), booked.ID, &dto.UpdateAppointmentRequest{
		Date:      "2026-09-08",
		Time:      "10:00",
		Treatment: "Revisión general",
	})
	if !errors.Is(err, ErrAppointmentCompleted) {
		t.Fatalf("reschedule of completed appointment: expected ErrAppointmentCompleted, got %v", err)
	}

	if err := f.usecase.Delete(context.Background(), booked.ID); !errors.Is(err, ErrAppointmentCompleted) {
		t.Fatalf("cancel of completed appointment: expected ErrAppointmentCompleted, got %v", err)
	}
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	f := newAppointmentFixture(t, config.InvoiceConfig{})

	if err := f.usecase.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}
