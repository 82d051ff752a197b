package breeding

import (
	"testing"
	"time"

	"github.com/gadogest/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReproductionEvent(t *testing.T) {
	femaleID := uuid.New()
	date := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		eventType   EventType
		eventDate   time.Time
		femaleID    uuid.UUID
		responsible string
		wantErr     bool
		errCode     string
		wantStatus  EventStatus
	}{
		{
			name:        "mating event",
			eventType:   EventTypeMating,
			eventDate:   date,
			femaleID:    femaleID,
			responsible: "Pedro",
			wantStatus:  EventStatusConfirmed,
		},
		{
			name:        "birth event defaults to completed",
			eventType:   EventTypeBirth,
			eventDate:   date,
			femaleID:    femaleID,
			responsible: "Pedro",
			wantStatus:  EventStatusCompleted,
		},
		{
			name:        "unknown type",
			eventType:   EventType("Desmame"),
			eventDate:   date,
			femaleID:    femaleID,
			responsible: "Pedro",
			wantErr:     true,
			errCode:     "INVALID_TYPE",
		},
		{
			name:        "zero date",
			eventType:   EventTypeMating,
			eventDate:   time.Time{},
			femaleID:    femaleID,
			responsible: "Pedro",
			wantErr:     true,
			errCode:     "INVALID_EVENT_DATE",
		},
		{
			name:        "nil female",
			eventType:   EventTypeMating,
			eventDate:   date,
			femaleID:    uuid.Nil,
			responsible: "Pedro",
			wantErr:     true,
			errCode:     "INVALID_FEMALE",
		},
		{
			name:        "empty responsible",
			eventType:   EventTypeMating,
			eventDate:   date,
			femaleID:    femaleID,
			responsible: "  ",
			wantErr:     true,
			errCode:     "INVALID_RESPONSIBLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := NewReproductionEvent(tt.eventType, tt.eventDate, tt.femaleID, tt.responsible)
			if tt.wantErr {
				require.Error(t, err)
				var domainErr *shared.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, tt.errCode, domainErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, event.Status)
			assert.Equal(t, femaleID, event.FemaleID)
		})
	}
}

func TestReproductionEvent_RecordCalves(t *testing.T) {
	event, err := NewReproductionEvent(EventTypeBirth, time.Now(), uuid.New(), "Pedro")
	require.NoError(t, err)

	require.NoError(t, event.RecordCalves(2, []string{"BR-101", "BR-102"}))
	assert.Equal(t, 2, event.CalfCount)
	assert.Equal(t, []string{"BR-101", "BR-102"}, event.CalfTags)

	require.Error(t, event.RecordCalves(-1, nil))
	assert.Equal(t, 2, event.CalfCount)
}

func TestReproductionEvent_ChangeStatus(t *testing.T) {
	event, err := NewReproductionEvent(EventTypeGestation, time.Now(), uuid.New(), "Pedro")
	require.NoError(t, err)

	require.NoError(t, event.ChangeStatus(EventStatusInProgress))
	assert.Equal(t, EventStatusInProgress, event.Status)

	require.Error(t, event.ChangeStatus(EventStatus("Finalizada")))
	assert.Equal(t, EventStatusInProgress, event.Status)
}

func TestReproductionEvent_SetMaleAndMethod(t *testing.T) {
	event, err := NewReproductionEvent(EventTypeMating, time.Now(), uuid.New(), "Pedro")
	require.NoError(t, err)

	maleID := uuid.New()
	event.SetMale(maleID)
	require.NotNil(t, event.MaleID)
	assert.Equal(t, maleID, *event.MaleID)

	event.SetMethod(" Inseminação Artificial ")
	assert.Equal(t, "Inseminação Artificial", event.Method)
}
