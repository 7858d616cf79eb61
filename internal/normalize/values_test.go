package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enseco-data/wellstim/internal/entity"
	"github.com/enseco-data/wellstim/internal/fields"
)

func TestFieldsCoercion(t *testing.T) {
	raw := map[string]string{
		"operator":  "<b>Acme&nbsp;Operating</b>",
		"api":       "42 123 45678",
		"latitude":  "47.123456",
		"longitude": "not-a-number",
	}

	got := Fields(raw, fields.WellFields)

	assert.Equal(t, "Acme Operating", got["operator"])
	assert.Equal(t, "42-123-45678", got["api"])
	assert.Equal(t, 47.123456, got["latitude"])
	// failed coercion is dropped, not defaulted, at this stage
	_, ok := got["longitude"]
	assert.False(t, ok)
	// never-observed fields stay absent
	_, ok = got["datum"]
	assert.False(t, ok)
}

func TestFieldsBoundsStrings(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'j'
	}
	raw := map[string]string{"enseco_job": string(long)}

	got := Fields(raw, fields.WellFields)

	require.IsType(t, "", got["enseco_job"])
	assert.Len(t, got["enseco_job"], 64)
}

func TestFieldsDateCoercion(t *testing.T) {
	got := Fields(map[string]string{"date_stimulated": "01/02/2020"}, fields.StimFields)
	assert.Equal(t, entity.NewDate(2020, 1, 2), got["date_stimulated"])

	got = Fields(map[string]string{"date_stimulated": "Feb 2020"}, fields.StimFields)
	_, ok := got["date_stimulated"]
	assert.False(t, ok)
}

func TestApplyDefaults(t *testing.T) {
	got := ApplyDefaults(map[string]any{}, fields.WellFields)

	// defaultable fields receive the sentinels
	assert.Equal(t, StringMissingDefault, got["operator"])
	assert.Equal(t, StringMissingDefault, got["datum"])
	assert.Equal(t, float64(NumericMissingDefault), got["latitude"])

	// identity fields never receive a fabricated value
	_, ok := got["api"]
	assert.False(t, ok)
}

func TestApplyDefaultsStimulation(t *testing.T) {
	got := ApplyDefaults(map[string]any{}, fields.StimFields)

	assert.Equal(t, StringMissingDefault, got["acid"])
	assert.Equal(t, float64(NumericMissingDefault), got["volume"])
	assert.Equal(t, int64(NumericMissingDefault), got["stimulation_stages"])

	_, ok := got["date_stimulated"]
	assert.False(t, ok, "stimulation date must stay missing")
}

func TestApplyDefaultsKeepsObservedValues(t *testing.T) {
	in := map[string]any{"operator": "Acme", "latitude": 47.5}
	got := ApplyDefaults(in, fields.WellFields)

	assert.Equal(t, "Acme", got["operator"])
	assert.Equal(t, 47.5, got["latitude"])
	// input map is not mutated
	_, ok := in["datum"]
	assert.False(t, ok)
}
