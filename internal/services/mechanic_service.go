package services

import (
	"context"
	"strings"

	"mistriBack/internal/models"
	"mistriBack/internal/search"
	"mistriBack/internal/taxonomy"
)

// MechanicStore is the slice of the mechanic repository this service needs.
// *repositories.MechanicRepository satisfies it.
type MechanicStore interface {
	ListMechanics(ctx context.Context) ([]models.Mechanic, error)
	GetMechanicByID(ctx context.Context, id string) (models.Mechanic, error)
	GetMechanicByUserID(ctx context.Context, userID string) (models.Mechanic, error)
	CreateMechanic(ctx context.Context, m models.Mechanic) (models.Mechanic, error)
	UpdateMechanic(ctx context.Context, userID string, upd models.MechanicUpdate) error
	IsUsernameAvailable(ctx context.Context, username, excludeUserID string) (bool, error)
}

type MechanicService struct {
	MechanicRepo MechanicStore
}

func (s *MechanicService) ListMechanics(ctx context.Context) ([]models.Mechanic, error) {
	return s.MechanicRepo.ListMechanics(ctx)
}

func (s *MechanicService) GetMechanicByID(ctx context.Context, id string) (models.Mechanic, error) {
	return s.MechanicRepo.GetMechanicByID(ctx, id)
}

func (s *MechanicService) GetMechanicByUserID(ctx context.Context, userID string) (models.Mechanic, error) {
	return s.MechanicRepo.GetMechanicByUserID(ctx, userID)
}

func (s *MechanicService) CreateMechanic(ctx context.Context, m models.Mechanic) (models.Mechanic, error) {
	if m.Availability == "" {
		m.Availability = models.AvailabilityAvailable
	}
	if err := validateMechanicInput(m.Category, m.State, m.District, m.PerDayCost, m.Availability); err != nil {
		return models.Mechanic{}, err
	}
	return s.MechanicRepo.CreateMechanic(ctx, m)
}

// UpdateMechanic validates the patch against the profile it will produce:
// location fields are checked as the pair that results after the merge.
func (s *MechanicService) UpdateMechanic(ctx context.Context, userID string, upd models.MechanicUpdate) error {
	current, err := s.MechanicRepo.GetMechanicByUserID(ctx, userID)
	if err != nil {
		return err
	}

	category := current.Category
	if upd.Category != nil {
		category = *upd.Category
	}
	state := current.State
	district := current.District
	if upd.State != nil {
		state = *upd.State
		// a new state invalidates the old district unless the patch sets one
		district = ""
	}
	if upd.District != nil {
		district = *upd.District
	}
	perDayCost := current.PerDayCost
	if upd.PerDayCost != nil {
		perDayCost = *upd.PerDayCost
	}
	availability := current.Availability
	if upd.Availability != nil {
		availability = *upd.Availability
	}

	if err := validateMechanicInput(category, state, district, perDayCost, availability); err != nil {
		return err
	}
	if upd.State != nil && upd.District == nil {
		empty := ""
		upd.District = &empty
	}
	return s.MechanicRepo.UpdateMechanic(ctx, userID, upd)
}

func (s *MechanicService) IsUsernameAvailable(ctx context.Context, username, excludeUserID string) (bool, error) {
	if strings.TrimSpace(username) == "" {
		return false, nil
	}
	return s.MechanicRepo.IsUsernameAvailable(ctx, username, excludeUserID)
}

func (s *MechanicService) FilterMechanics(ctx context.Context, filters search.Filters) ([]models.Mechanic, error) {
	mechanics, err := s.MechanicRepo.ListMechanics(ctx)
	if err != nil {
		return nil, err
	}
	return search.Apply(mechanics, filters), nil
}

func (s *MechanicService) Stats(ctx context.Context) (search.Summary, error) {
	mechanics, err := s.MechanicRepo.ListMechanics(ctx)
	if err != nil {
		return search.Summary{}, err
	}
	return search.Summarize(mechanics), nil
}

func validateMechanicInput(category, state, district string, perDayCost float64, availability string) error {
	if perDayCost <= 0 {
		return models.ErrInvalidPerDayCost
	}
	if !taxonomy.ValidAvailability(availability) {
		return models.ErrInvalidAvailability
	}
	if !taxonomy.ValidCategory(category) {
		return models.ErrUnknownCategory
	}
	if !taxonomy.ValidState(state) {
		return models.ErrUnknownState
	}
	if !taxonomy.ValidDistrict(state, district) {
		return models.ErrInvalidDistrict
	}
	return nil
}
