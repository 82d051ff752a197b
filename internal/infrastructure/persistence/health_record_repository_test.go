package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/gadogest/backend/internal/domain/health"
	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRecord(t *testing.T, animalID uuid.UUID, recordType health.RecordType, date time.Time) *health.HealthRecord {
	t.Helper()
	record, err := health.NewHealthRecord(animalID, recordType, date, "João")
	require.NoError(t, err)
	return record
}

func TestGormHealthRecordRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormHealthRecordRepository(db)
	ctx := context.Background()

	record := newHealthRecord(t, uuid.New(), health.RecordTypeVaccination, time.Now())
	record.SetProduct("Febre Aftosa", "5ml")
	require.NoError(t, repo.Save(ctx, record))

	found, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, health.RecordTypeVaccination, found.Type)
	assert.Equal(t, "Febre Aftosa", found.Product)
	assert.Equal(t, "5ml", found.Dosage)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormHealthRecordRepository_FindAll_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormHealthRecordRepository(db)
	ctx := context.Background()

	animalID := uuid.New()
	otherID := uuid.New()
	may := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	june := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, newHealthRecord(t, animalID, health.RecordTypeVaccination, may)))
	require.NoError(t, repo.Save(ctx, newHealthRecord(t, animalID, health.RecordTypeExam, june)))
	require.NoError(t, repo.Save(ctx, newHealthRecord(t, otherID, health.RecordTypeVaccination, june)))

	filter := shared.DefaultFilter()
	filter.Filters = map[string]interface{}{"animal_id": animalID}

	records, total, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, records, 2)
	// date desc: newest first
	assert.Equal(t, health.RecordTypeExam, records[0].Type)

	filter.Filters["type"] = health.RecordTypeVaccination
	records, total, err = repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, may, records[0].Date.UTC())
}

func TestGormHealthRecordRepository_FindAll_DateRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormHealthRecordRepository(db)
	ctx := context.Background()

	animalID := uuid.New()
	require.NoError(t, repo.Save(ctx, newHealthRecord(t, animalID, health.RecordTypeVaccination, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, repo.Save(ctx, newHealthRecord(t, animalID, health.RecordTypeVaccination, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))))

	filter := shared.DefaultFilter()
	filter.Filters = map[string]interface{}{
		"date_from": time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		"date_to":   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	_, total, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestGormHealthRecordRepository_FindByAnimal(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormHealthRecordRepository(db)
	ctx := context.Background()

	animalID := uuid.New()
	require.NoError(t, repo.Save(ctx, newHealthRecord(t, animalID, health.RecordTypeVaccination, time.Now())))
	require.NoError(t, repo.Save(ctx, newHealthRecord(t, uuid.New(), health.RecordTypeVaccination, time.Now())))

	records, err := repo.FindByAnimal(ctx, animalID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGormHealthRecordRepository_CountScheduledAfter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormHealthRecordRepository(db)
	ctx := context.Background()

	now := time.Now()

	scheduled := newHealthRecord(t, uuid.New(), health.RecordTypeVaccination, now)
	require.NoError(t, scheduled.ChangeStatus(health.RecordStatusScheduled))
	scheduled.SetNextApplication(now.Add(48 * time.Hour))
	require.NoError(t, repo.Save(ctx, scheduled))

	past := newHealthRecord(t, uuid.New(), health.RecordTypeVaccination, now)
	require.NoError(t, past.ChangeStatus(health.RecordStatusScheduled))
	past.SetNextApplication(now.Add(-48 * time.Hour))
	require.NoError(t, repo.Save(ctx, past))

	done := newHealthRecord(t, uuid.New(), health.RecordTypeVaccination, now)
	done.SetNextApplication(now.Add(48 * time.Hour))
	require.NoError(t, repo.Save(ctx, done))

	count, err := repo.CountScheduledAfter(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormHealthRecordRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormHealthRecordRepository(db)
	ctx := context.Background()

	record := newHealthRecord(t, uuid.New(), health.RecordTypeVaccination, time.Now())
	require.NoError(t, repo.Save(ctx, record))
	require.NoError(t, repo.Delete(ctx, record.ID))
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
}
