package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	evt := NewBaseEvent("financial.receivable.settled", "rec-1", "Receivable", "clinic-1")
	after := time.Now().UTC()

	assert.NotEmpty(t, evt.EventID())
	assert.Equal(t, "financial.receivable.settled", evt.EventType())
	assert.Equal(t, "rec-1", evt.AggregateID())
	assert.Equal(t, "Receivable", evt.AggregateType())
	assert.Equal(t, "clinic-1", evt.ClinicID())
	assert.False(t, evt.OccurredAt().Before(before))
	assert.False(t, evt.OccurredAt().After(after))
}

func TestBaseEvent_SerializesWithEmbeddedFields(t *testing.T) {
	type patientCreated struct {
		BaseEvent
		Name string `json:"name"`
	}

	evt := patientCreated{
		BaseEvent: NewBaseEvent("clinic.patient.created", "pat-1", "Patient", "clinic-1"),
		Name:      "Maria",
	}

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "clinic.patient.created", decoded["event_type"])
	assert.Equal(t, "Maria", decoded["name"])
	assert.Equal(t, "clinic-1", decoded["clinic_id"])
}
