package breeding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gadogest/backend/internal/domain/breeding"
	"github.com/gadogest/backend/internal/domain/herd"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BreedingService manages reproduction events. The female must reference an
// existing animal; the male is checked only when provided.
type BreedingService struct {
	eventRepo  breeding.ReproductionEventRepository
	animalRepo herd.AnimalRepository
}

func NewBreedingService(eventRepo breeding.ReproductionEventRepository, animalRepo herd.AnimalRepository) *BreedingService {
	return &BreedingService{
		eventRepo:  eventRepo,
		animalRepo: animalRepo,
	}
}

func (s *BreedingService) Create(ctx context.Context, req CreateReproductionEventRequest) (*ReproductionEventResponse, error) {
	femaleID, err := uuid.Parse(req.FemaleID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_FEMALE", "Fêmea inválida")
	}
	female, err := s.animalRepo.FindByID(ctx, femaleID)
	if err != nil {
		return nil, err
	}

	eventDate, err := parseDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	event, err := breeding.NewReproductionEvent(breeding.EventType(req.Type), eventDate, femaleID, req.Responsible)
	if err != nil {
		return nil, err
	}

	var male *herd.Animal
	if req.MaleID != "" {
		maleID, err := uuid.Parse(req.MaleID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_MALE", "Macho inválido")
		}
		male, err = s.animalRepo.FindByID(ctx, maleID)
		if err != nil {
			return nil, err
		}
		event.SetMale(maleID)
	}

	if req.ExpectedDate != "" {
		expected, err := parseDate(req.ExpectedDate)
		if err != nil {
			return nil, err
		}
		event.SetExpectedDate(expected)
	}
	if req.Method != "" {
		event.SetMethod(req.Method)
	}
	if req.Status != "" {
		if err := event.ChangeStatus(breeding.EventStatus(req.Status)); err != nil {
			return nil, err
		}
	}
	if req.CalfCount > 0 || len(req.CalfTags) > 0 {
		if err := event.RecordCalves(req.CalfCount, req.CalfTags); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		if err := event.SetNotes(req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}

	resp := ToReproductionEventResponse(event, animalSummaryOf(female), animalSummaryOf(male))
	return &resp, nil
}

func (s *BreedingService) GetByID(ctx context.Context, id uuid.UUID) (*ReproductionEventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.attachAnimals(ctx, event)
}

// List returns events with embedded animal summaries plus the summary counters
// computed over the whole filtered set.
func (s *BreedingService) List(ctx context.Context, query ListReproductionEventsQuery) (*ListReproductionEventsResult, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	events, total, err := s.eventRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary, err := s.eventRepo.Summarize(ctx, filter)
	if err != nil {
		return nil, err
	}

	cache := make(map[uuid.UUID]*AnimalSummary)
	responses := make([]ReproductionEventResponse, 0, len(events))
	for _, event := range events {
		female, err := s.lookupAnimal(ctx, cache, event.FemaleID)
		if err != nil {
			return nil, err
		}
		var male *AnimalSummary
		if event.MaleID != nil {
			male, err = s.lookupAnimal(ctx, cache, *event.MaleID)
			if err != nil {
				return nil, err
			}
		}
		responses = append(responses, ToReproductionEventResponse(event, female, male))
	}

	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &ListReproductionEventsResult{
		Events:     page.Items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		Summary:    ToSummaryResponse(summary),
	}, nil
}

func (s *BreedingService) Update(ctx context.Context, id uuid.UUID, req UpdateReproductionEventRequest) (*ReproductionEventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if err := breeding.ValidateEventType(breeding.EventType(*req.Type)); err != nil {
			return nil, err
		}
		event.Type = breeding.EventType(*req.Type)
		event.Touch()
	}
	if req.EventDate != nil {
		eventDate, err := parseDate(*req.EventDate)
		if err != nil {
			return nil, err
		}
		event.EventDate = eventDate
		event.Touch()
	}
	if req.ExpectedDate != nil {
		if *req.ExpectedDate == "" {
			event.ExpectedDate = nil
			event.Touch()
		} else {
			expected, err := parseDate(*req.ExpectedDate)
			if err != nil {
				return nil, err
			}
			event.SetExpectedDate(expected)
		}
	}
	if req.MaleID != nil {
		maleID, err := uuid.Parse(*req.MaleID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_MALE", "Macho inválido")
		}
		if _, err := s.animalRepo.FindByID(ctx, maleID); err != nil {
			return nil, err
		}
		event.SetMale(maleID)
	}
	if req.Method != nil {
		event.SetMethod(*req.Method)
	}
	if req.Responsible != nil {
		event.Responsible = *req.Responsible
		event.Touch()
	}
	if req.Status != nil {
		if err := event.ChangeStatus(breeding.EventStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.CalfCount != nil {
		tags := event.CalfTags
		if req.CalfTags != nil {
			tags = req.CalfTags
		}
		if err := event.RecordCalves(*req.CalfCount, tags); err != nil {
			return nil, err
		}
	} else if req.CalfTags != nil {
		event.CalfTags = req.CalfTags
		event.Touch()
	}
	if req.Notes != nil {
		if err := event.SetNotes(*req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}
	return s.attachAnimals(ctx, event)
}

func (s *BreedingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.eventRepo.Delete(ctx, id)
}

// Summarize exposes the counters without listing events.
func (s *BreedingService) Summarize(ctx context.Context, query ListReproductionEventsQuery) (*SummaryResponse, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}
	summary, err := s.eventRepo.Summarize(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := ToSummaryResponse(summary)
	return &resp, nil
}

func (s *BreedingService) attachAnimals(ctx context.Context, event *breeding.ReproductionEvent) (*ReproductionEventResponse, error) {
	cache := make(map[uuid.UUID]*AnimalSummary)
	female, err := s.lookupAnimal(ctx, cache, event.FemaleID)
	if err != nil {
		return nil, err
	}
	var male *AnimalSummary
	if event.MaleID != nil {
		male, err = s.lookupAnimal(ctx, cache, *event.MaleID)
		if err != nil {
			return nil, err
		}
	}
	resp := ToReproductionEventResponse(event, female, male)
	return &resp, nil
}

// lookupAnimal tolerates animals removed after the event was recorded,
// any other repository failure is surfaced.
func (s *BreedingService) lookupAnimal(ctx context.Context, cache map[uuid.UUID]*AnimalSummary, id uuid.UUID) (*AnimalSummary, error) {
	if summary, ok := cache[id]; ok {
		return summary, nil
	}
	animal, err := s.animalRepo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	summary := animalSummaryOf(animal)
	cache[id] = summary
	return summary, nil
}

func animalSummaryOf(animal *herd.Animal) *AnimalSummary {
	if animal == nil {
		return nil
	}
	return &AnimalSummary{
		ID:             animal.ID,
		Identification: animal.Identification,
		Breed:          animal.Breed,
	}
}

func buildFilter(query ListReproductionEventsQuery) (shared.Filter, error) {
	filter := shared.DefaultFilter()
	if query.Page > 0 {
		filter.Page = query.Page
	}
	if query.Limit > 0 {
		filter.PageSize = query.Limit
	}
	if query.Type != "" {
		filter.Filters["type"] = query.Type
	}
	if query.Status != "" {
		filter.Filters["status"] = query.Status
	}
	if query.FemaleID != "" {
		femaleID, err := uuid.Parse(query.FemaleID)
		if err != nil {
			return filter, shared.NewDomainError("INVALID_FEMALE", "Fêmea inválida")
		}
		filter.Filters["female_id"] = femaleID
	}
	if query.DateFrom != "" {
		from, err := parseDate(query.DateFrom)
		if err != nil {
			return filter, err
		}
		filter.Filters["date_from"] = from
	}
	if query.DateTo != "" {
		to, err := parseDate(query.DateTo)
		if err != nil {
			return filter, err
		}
		filter.Filters["date_to"] = to
	}
	return filter, nil
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
