package prescription

import (
	"context"
	"strconv"
	"strings"

	"github.com/jwalitptl/records-api/internal/model"
	"github.com/jwalitptl/records-api/internal/repository"
	apperrors "github.com/jwalitptl/records-api/pkg/errors"
)

// validate checks a create request before anything is written. Rules run in
// a fixed order and the first failure wins.
func (s *Service) validate(ctx context.Context, catalog repository.CatalogRepository, req *model.CreatePrescriptionRequest) error {
	if len(req.Medicaments) > model.MaxMedicamentsPerPrescription {
		return apperrors.Validationf("Prescription cannot contain more than %d medicaments", model.MaxMedicamentsPerPrescription)
	}
	if len(req.Medicaments) == 0 {
		return apperrors.NewValidation("Prescription must contain at least one medicament")
	}
	if req.DueDate.Before(req.Date) {
		return apperrors.NewValidation("Due date cannot be earlier than prescription date")
	}
	if err := s.validator.Validate(req); err != nil {
		return apperrors.NewValidation(err.Error())
	}

	ids := distinctMedicamentIDs(req.Medicaments)
	found, err := catalog.ExistingMedicamentIDs(ctx, ids)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return apperrors.Validationf("Medicaments with IDs [%s] do not exist", joinIDs(missing))
	}

	exists, err := catalog.DoctorExists(ctx, req.DoctorID)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if !exists {
		return apperrors.Validationf("Doctor with ID %d does not exist", req.DoctorID)
	}
	return nil
}

// distinctMedicamentIDs keeps the first occurrence of each id, in request order.
func distinctMedicamentIDs(items []model.LineItemInput) []int {
	seen := make(map[int]struct{}, len(items))
	ids := make([]int, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.MedicamentID]; ok {
			continue
		}
		seen[item.MedicamentID] = struct{}{}
		ids = append(ids, item.MedicamentID)
	}
	return ids
}

func missingIDs(want, found []int) []int {
	present := make(map[int]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	var missing []int
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

