package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gadogest/backend/internal/domain/health"
	"github.com/gadogest/backend/internal/domain/herd"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// HealthRecordService coordinates health record operations and the optional
// animal status side effect on creation.
type HealthRecordService struct {
	recordRepo health.HealthRecordRepository
	animalRepo herd.AnimalRepository
}

func NewHealthRecordService(recordRepo health.HealthRecordRepository, animalRepo herd.AnimalRepository) *HealthRecordService {
	return &HealthRecordService{
		recordRepo: recordRepo,
		animalRepo: animalRepo,
	}
}

// Create persists a new record. The animal must exist. When the request asks
// for an animal status update, the record is committed first and the animal
// status change follows as a separate write.
func (s *HealthRecordService) Create(ctx context.Context, req CreateHealthRecordRequest) (*HealthRecordResponse, error) {
	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ANIMAL", "Animal inválido")
	}

	animal, err := s.animalRepo.FindByID(ctx, animalID)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	record, err := health.NewHealthRecord(animalID, health.RecordType(req.Type), date, req.Applicator)
	if err != nil {
		return nil, err
	}

	if req.Product != "" {
		record.SetProduct(req.Product, req.Dosage)
	}
	if req.Veterinarian != "" {
		record.SetVeterinarian(req.Veterinarian)
	}
	if req.Status != "" {
		if err := record.ChangeStatus(health.RecordStatus(req.Status)); err != nil {
			return nil, err
		}
	}
	if req.NextApplication != "" {
		next, err := parseDate(req.NextApplication)
		if err != nil {
			return nil, err
		}
		record.SetNextApplication(next)
	}
	if req.Cost != nil {
		if err := record.SetCost(*req.Cost); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		if err := record.SetNotes(req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.recordRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	if req.UpdateAnimalStatus && req.NewAnimalStatus != "" {
		if err := animal.ChangeStatus(herd.AnimalStatus(req.NewAnimalStatus)); err != nil {
			return nil, err
		}
		if err := s.animalRepo.Save(ctx, animal); err != nil {
			return nil, err
		}
	}

	resp := ToHealthRecordResponse(record, animalSummaryOf(animal))
	return &resp, nil
}

func (s *HealthRecordService) GetByID(ctx context.Context, id uuid.UUID) (*HealthRecordResponse, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.attachAnimal(ctx, record)
}

// List returns health records with the embedded animal summary resolved for
// each record. Animals are looked up once per distinct id.
func (s *HealthRecordService) List(ctx context.Context, query ListHealthRecordsQuery) (*shared.Paginated[HealthRecordResponse], error) {
	filter := shared.DefaultFilter()
	if query.Page > 0 {
		filter.Page = query.Page
	}
	if query.Limit > 0 {
		filter.PageSize = query.Limit
	}
	if query.AnimalID != "" {
		animalID, err := uuid.Parse(query.AnimalID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_ANIMAL", "Animal inválido")
		}
		filter.Filters["animal_id"] = animalID
	}
	if query.Type != "" {
		filter.Filters["type"] = query.Type
	}
	if query.Status != "" {
		filter.Filters["status"] = query.Status
	}
	if query.DateFrom != "" {
		from, err := parseDate(query.DateFrom)
		if err != nil {
			return nil, err
		}
		filter.Filters["date_from"] = from
	}
	if query.DateTo != "" {
		to, err := parseDate(query.DateTo)
		if err != nil {
			return nil, err
		}
		filter.Filters["date_to"] = to
	}

	records, total, err := s.recordRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	animals := make(map[uuid.UUID]*AnimalSummary)
	responses := make([]HealthRecordResponse, 0, len(records))
	for _, record := range records {
		summary, ok := animals[record.AnimalID]
		if !ok {
			animal, err := s.animalRepo.FindByID(ctx, record.AnimalID)
			if err != nil && !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
			summary = animalSummaryOf(animal)
			animals[record.AnimalID] = summary
		}
		responses = append(responses, ToHealthRecordResponse(record, summary))
	}

	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

func (s *HealthRecordService) Update(ctx context.Context, id uuid.UUID, req UpdateHealthRecordRequest) (*HealthRecordResponse, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if err := health.ValidateRecordType(health.RecordType(*req.Type)); err != nil {
			return nil, err
		}
		record.Type = health.RecordType(*req.Type)
		record.Touch()
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		record.Date = date
		record.Touch()
	}
	if req.Product != nil {
		dosage := record.Dosage
		if req.Dosage != nil {
			dosage = *req.Dosage
		}
		record.SetProduct(*req.Product, dosage)
	} else if req.Dosage != nil {
		record.Dosage = *req.Dosage
		record.Touch()
	}
	if req.Applicator != nil {
		record.Applicator = *req.Applicator
		record.Touch()
	}
	if req.Veterinarian != nil {
		record.SetVeterinarian(*req.Veterinarian)
	}
	if req.Status != nil {
		if err := record.ChangeStatus(health.RecordStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.NextApplication != nil {
		if *req.NextApplication == "" {
			record.NextApplication = nil
			record.Touch()
		} else {
			next, err := parseDate(*req.NextApplication)
			if err != nil {
				return nil, err
			}
			record.SetNextApplication(next)
		}
	}
	if req.Cost != nil {
		if err := record.SetCost(*req.Cost); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		if err := record.SetNotes(*req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.recordRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	return s.attachAnimal(ctx, record)
}

func (s *HealthRecordService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.recordRepo.Delete(ctx, id)
}

func (s *HealthRecordService) attachAnimal(ctx context.Context, record *health.HealthRecord) (*HealthRecordResponse, error) {
	animal, err := s.animalRepo.FindByID(ctx, record.AnimalID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	resp := ToHealthRecordResponse(record, animalSummaryOf(animal))
	return &resp, nil
}

func animalSummaryOf(animal *herd.Animal) *AnimalSummary {
	if animal == nil {
		return nil
	}
	return &AnimalSummary{
		ID:             animal.ID,
		Identification: animal.Identification,
		Type:           string(animal.Type),
		Breed:          animal.Breed,
	}
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, shared.NewDomainError("INVALID_DATE", fmt.Sprintf("Data inválida: %s", value))
}
