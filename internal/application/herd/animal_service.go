package herd

import (
	"context"

	"github.com/gadogest/backend/internal/domain/herd"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AnimalService handles herd business operations
type AnimalService struct {
	animalRepo herd.AnimalRepository
}

// NewAnimalService creates a new AnimalService
func NewAnimalService(animalRepo herd.AnimalRepository) *AnimalService {
	return &AnimalService{animalRepo: animalRepo}
}

// Create creates a new animal from the quick creation form
func (s *AnimalService) Create(ctx context.Context, req CreateAnimalRequest) (*AnimalResponse, error) {
	exists, err := s.animalRepo.ExistsByIdentification(ctx, req.Identification)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Já existe um animal com essa identificação")
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	sex := herd.SexMale
	if req.Sex != "" {
		sex = herd.Sex(req.Sex)
	}

	animal, err := herd.NewAnimal(req.Identification, herd.AnimalType(req.Type), req.Breed, birthDate, sex, req.Weight)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		if err := animal.ChangeStatus(herd.AnimalStatus(req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Height != nil {
		if err := animal.SetHeight(*req.Height); err != nil {
			return nil, err
		}
	}
	if req.MotherID != nil || req.FatherID != nil {
		animal.SetParents(req.MotherID, req.FatherID)
	}
	if req.Farm != "" {
		animal.SetFarm(req.Farm)
	}
	if req.Notes != "" {
		if err := animal.SetNotes(req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.animalRepo.Save(ctx, animal); err != nil {
		return nil, err
	}

	response := ToAnimalResponse(animal)
	return &response, nil
}

// Register creates a new animal from the full registration form
func (s *AnimalService) Register(ctx context.Context, req RegisterAnimalRequest) (*AnimalResponse, error) {
	return s.Create(ctx, CreateAnimalRequest{
		Identification: req.Identification,
		Type:           req.Type,
		Breed:          req.Breed,
		BirthDate:      req.BirthDate,
		Sex:            req.Sex,
		Weight:         req.Weight,
		Height:         req.Height,
		MotherID:       req.MotherID,
		FatherID:       req.FatherID,
		Farm:           req.Farm,
		Notes:          req.Notes,
	})
}

// GetByID retrieves an animal by ID
func (s *AnimalService) GetByID(ctx context.Context, id uuid.UUID) (*AnimalResponse, error) {
	animal, err := s.animalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToAnimalResponse(animal)
	return &response, nil
}

// List retrieves animals matching the query, newest first
func (s *AnimalService) List(ctx context.Context, query ListAnimalsQuery) (*shared.Paginated[AnimalResponse], error) {
	filter := shared.DefaultFilter()
	if query.Page > 0 {
		filter.Page = query.Page
	}
	if query.Limit > 0 {
		filter.PageSize = query.Limit
	}
	filter.Search = query.Search
	if query.Type != "" {
		filter.Filters["type"] = query.Type
	}
	if query.Status != "" {
		filter.Filters["status"] = query.Status
	}
	if query.Farm != "" {
		filter.Filters["farm"] = query.Farm
	}

	animals, total, err := s.animalRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToAnimalResponses(animals), total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update applies a partial update to an animal
func (s *AnimalService) Update(ctx context.Context, id uuid.UUID, req UpdateAnimalRequest) (*AnimalResponse, error) {
	animal, err := s.animalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Identification != nil && *req.Identification != animal.Identification {
		exists, err := s.animalRepo.ExistsByIdentification(ctx, *req.Identification)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Já existe um animal com essa identificação")
		}
		if err := animal.ChangeIdentification(*req.Identification); err != nil {
			return nil, err
		}
	}
	if req.Type != nil {
		if err := herd.ValidateAnimalType(herd.AnimalType(*req.Type)); err != nil {
			return nil, err
		}
		animal.Type = herd.AnimalType(*req.Type)
		animal.Touch()
	}
	if req.Breed != nil {
		animal.Breed = *req.Breed
		animal.Touch()
	}
	if req.BirthDate != nil {
		birthDate, err := parseDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		animal.BirthDate = birthDate
		animal.Touch()
	}
	if req.Sex != nil {
		if err := herd.ValidateSex(herd.Sex(*req.Sex)); err != nil {
			return nil, err
		}
		animal.Sex = herd.Sex(*req.Sex)
		animal.Touch()
	}
	if req.Weight != nil {
		if err := animal.SetWeight(*req.Weight); err != nil {
			return nil, err
		}
	}
	if req.Height != nil {
		if err := animal.SetHeight(*req.Height); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := animal.ChangeStatus(herd.AnimalStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.MotherID != nil || req.FatherID != nil {
		mother := animal.MotherID
		father := animal.FatherID
		if req.MotherID != nil {
			mother = req.MotherID
		}
		if req.FatherID != nil {
			father = req.FatherID
		}
		animal.SetParents(mother, father)
	}
	if req.Farm != nil {
		animal.SetFarm(*req.Farm)
	}
	if req.Notes != nil {
		if err := animal.SetNotes(*req.Notes); err != nil {
			return nil, err
		}
	}
	if req.Active != nil {
		if *req.Active {
			animal.Activate()
		} else {
			animal.Deactivate()
		}
	}

	if err := s.animalRepo.Save(ctx, animal); err != nil {
		return nil, err
	}

	response := ToAnimalResponse(animal)
	return &response, nil
}

// Delete removes an animal permanently
func (s *AnimalService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.animalRepo.Delete(ctx, id)
}
