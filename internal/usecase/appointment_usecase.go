package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"vetclinic-backend/config"
	"vetclinic-backend/internal/converter"
	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/domain/repository"
	"vetclinic-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrClinicClosed         = errors.New("the clinic is closed on that day")
	ErrNoRoomAvailable      = errors.New("no consultation room is free at that date and time")
	ErrAppointmentCompleted = errors.New("appointment was already completed")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.InvoiceResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	clinicCfg       config.ClinicConfig
	invoiceCfg      config.InvoiceConfig
	appointmentRepo repository.AppointmentRepository
	ownerRepo       repository.OwnerRepository
	animalRepo      repository.AnimalRepository
	invoiceRepo     repository.InvoiceRepository
	catalog         service.PriceCatalog
	audit           service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	clinicCfg config.ClinicConfig,
	invoiceCfg config.InvoiceConfig,
	appointmentRepo repository.AppointmentRepository,
	ownerRepo repository.OwnerRepository,
	animalRepo repository.AnimalRepository,
	invoiceRepo repository.InvoiceRepository,
	catalog service.PriceCatalog,
	audit service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		clinicCfg:       clinicCfg,
		invoiceCfg:      invoiceCfg,
		appointmentRepo: appointmentRepo,
		ownerRepo:       ownerRepo,
		animalRepo:      animalRepo,
		invoiceRepo:     invoiceRepo,
		catalog:         catalog,
		audit:           audit,
	}
}

// Create books an appointment and assigns the first free consultation room.
//
// Flow:
//  1. Reject dates falling on the clinic's closed weekday (business rule,
//     checked before any capacity reasoning)
//  2. Validate owner and animal exist
//  3. For each room in priority order, attempt the insert; the unique index
//     on (date, time, room) rejects a taken slot atomically
//  4. Pool exhausted -> no room is free at that instant
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.checkOpenDay(req.Date); err != nil {
		return nil, err
	}

	owner, err := u.ownerRepo.FindByID(ctx, req.OwnerID)
	if err != nil {
		u.log.Warnf("Failed to check owner %s: %+v", req.OwnerID, err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	animal, err := u.animalRepo.FindByID(ctx, req.AnimalID)
	if err != nil {
		return nil, err
	}
	if animal == nil {
		return nil, ErrAnimalNotFound
	}

	for _, room := range u.clinicCfg.Rooms {
		appointment := &entity.Appointment{
			Date:      req.Date,
			Time:      req.Time,
			Treatment: req.Treatment,
			Reason:    req.Reason,
			Room:      room,
			OwnerID:   req.OwnerID,
			AnimalID:  req.AnimalID,
		}

		err := u.appointmentRepo.Create(ctx, appointment)
		if errors.Is(err, repository.ErrDuplicateKey) {
			// Slot taken, try the next room in the pool
			continue
		}
		if err != nil {
			u.log.Warnf("Failed to create appointment: %+v", err)
			return nil, err
		}

		u.log.Infof("Appointment booked: id=%s, date=%s, time=%s, room=%s", appointment.ID, appointment.Date, appointment.Time, room)
		u.audit.Record(ctx, "appointment.booked", entity.JSON{
			"appointment_id": appointment.ID.String(),
			"date":           appointment.Date,
			"time":           appointment.Time,
			"room":           room,
		})
		return converter.AppointmentToResponse(appointment), nil
	}

	return nil, ErrNoRoomAvailable
}

func (u *appointmentUsecase) GetAll(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Update reschedules an appointment. Room assignment reruns against the
// new slot; the appointment keeps its current room when that slot is free
// and otherwise moves to the first free one. The row being updated never
// conflicts with itself on the slot index.
func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.checkOpenDay(req.Date); err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.Completed {
		return nil, ErrAppointmentCompleted
	}

	appointment.Date = req.Date
	appointment.Time = req.Time
	appointment.Treatment = req.Treatment
	appointment.Reason = req.Reason

	for _, room := range u.candidateRooms(appointment.Room) {
		appointment.Room = room

		err := u.appointmentRepo.Update(ctx, appointment)
		if errors.Is(err, repository.ErrDuplicateKey) {
			continue
		}
		if err != nil {
			u.log.Warnf("Failed to reschedule appointment %s: %+v", id, err)
			return nil, err
		}

		u.log.Infof("Appointment rescheduled: id=%s, date=%s, time=%s, room=%s", id, req.Date, req.Time, room)
		return converter.AppointmentToResponse(appointment), nil
	}

	return nil, ErrNoRoomAvailable
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	// A completed appointment is closed out and billed; it can no longer
	// be cancelled.
	if appointment.Completed {
		return ErrAppointmentCompleted
	}

	return u.appointmentRepo.Delete(ctx, id)
}

// Complete closes out a scheduled appointment into a priced invoice.
//
// Flow:
//  1. Find appointment
//  2. Atomically flip completed (rows affected 0 = already completed)
//  3. Sum catalog prices over the performed treatments; names missing from
//     the catalog contribute zero
//  4. Apply the flat tax rate when enabled
//  5. Create the invoice, unpaid
func (u *appointmentUsecase) Complete(ctx context.Context, id uuid.UUID, req *dto.CompleteAppointmentRequest) (*dto.InvoiceResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.MarkCompleted(ctx, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAppointmentCompleted
	}

	prices, err := u.catalog.TreatmentPrices(ctx)
	if err != nil {
		u.log.Warnf("Failed to load treatment prices: %+v", err)
		return nil, err
	}

	total := decimal.Zero
	for _, name := range req.Treatments {
		total = total.Add(prices[name])
	}
	if u.invoiceCfg.TaxEnabled {
		total = total.Mul(decimal.NewFromInt(1).Add(u.invoiceCfg.TaxRate)).Round(2)
	}

	invoice := &entity.Invoice{
		AppointmentID: appointment.ID,
		OwnerID:       appointment.OwnerID,
		Treatments:    strings.Join(req.Treatments, ", "),
		TotalPrice:    total,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Paid:          false,
	}

	if err := u.invoiceRepo.Create(ctx, invoice); err != nil {
		u.log.Errorf("Failed to create invoice for appointment %s: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Appointment completed: id=%s, invoice=%s, total=%s", id, invoice.ID, total)
	u.audit.Record(ctx, "appointment.completed", entity.JSON{
		"appointment_id": appointment.ID.String(),
		"invoice_id":     invoice.ID.String(),
		"total_price":    total.String(),
	})
	return converter.InvoiceToResponse(invoice), nil
}

// checkOpenDay rejects bookings on the clinic's fixed closed weekday.
func (u *appointmentUsecase) checkOpenDay(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	if int(day.Weekday()) == u.clinicCfg.ClosedWeekday {
		return ErrClinicClosed
	}
	return nil
}

// candidateRooms keeps the current room first so an unchanged slot does
// not shuffle the assignment.
func (u *appointmentUsecase) candidateRooms(current string) []string {
	rooms := make([]string, 0, len(u.clinicCfg.Rooms))
	rooms = append(rooms, current)
	for _, room := range u.clinicCfg.Rooms {
		if room != current {
			rooms = append(rooms, room)
		}
	}
	return rooms
}
