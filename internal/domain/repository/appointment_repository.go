package repository

import (
	"context"

	"vetclinic-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	// Create returns ErrDuplicateKey when the (date, time, room) slot is
	// already taken, so callers can try the next room in the pool.
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	// Update obeys the same slot uniqueness as Create.
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	// MarkCompleted flips completed only when it is still false and reports
	// affected rows: 1 = completed now, 0 = was already completed.
	MarkCompleted(ctx context.Context, id uuid.UUID) (int64, error)
}
