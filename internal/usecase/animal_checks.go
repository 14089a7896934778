package usecase

import (
	"errors"

	"vetclinic-backend/internal/delivery/dto"
)

var ErrPermitRequired = errors.New("species requires a permit")

// RequirePermitForSpecies returns a check rejecting registrations of the
// given species when no permit is supplied.
func RequirePermitForSpecies(species ...string) AnimalCheck {
	flagged := make(map[string]struct{}, len(species))
	for _, s := range species {
		flagged[s] = struct{}{}
	}

	return func(req *dto.CreateAnimalRequest) error {
		if _, ok := flagged[req.Species]; ok && req.Permit == "" {
			return ErrPermitRequired
		}
		return nil
	}
}
