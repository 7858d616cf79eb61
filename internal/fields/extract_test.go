package fields

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `Operator: Acme Operating Co
Well Name & Number: Bighorn 12-27H
API Number: 42-123-45678
Enseco Job #: EJ-1042
Job Type: Fracture Stimulation
County, State: McKenzie, ND
Surface Hole Location (SHL): NWNW 27-152N-96W
Latitude: 47.123456 Longitude: 103.654321
Datum: NAD83
Date Stimulated: 01/02/2020
Stimulated Formation: Bakken
Top (ft): 9,812
Bottom (ft): 10,430
Stimulation Stages: 35
Volume (bbls): 18,250.5
Type Treatment: Slickwater
Acid: 15% HCL
Lbs Proppant: 3,500,000
Max Treatment Pressure: 8,750
Max Treatment Rate: 42.5
Details: Pumped pad followed by proppant ramp.
`

func TestExtractWell(t *testing.T) {
	got := ExtractWell(sampleReport, WellFields)

	assert.Equal(t, "Acme Operating Co", got["operator"])
	assert.Equal(t, "Bighorn 12-27H", got["well_name"])
	assert.Equal(t, "42-123-45678", got["api"])
	assert.Equal(t, "EJ-1042", got["enseco_job"])
	assert.Equal(t, "Fracture Stimulation", got["job_type"])
	assert.Equal(t, "McKenzie, ND", got["county_state"])
	assert.Equal(t, "NWNW 27-152N-96W", got["shl"])
	assert.Equal(t, "47.123456", got["latitude"])
	assert.Equal(t, "103.654321", got["longitude"])
	assert.Equal(t, "NAD83", got["datum"])
}

func TestExtractStimulation(t *testing.T) {
	got := ExtractStimulation(sampleReport, StimFields)

	assert.Equal(t, "01/02/2020", got["date_stimulated"])
	assert.Equal(t, "Bakken", got["stimulated_formation"])
	assert.Equal(t, "9,812", got["top_ft"])
	assert.Equal(t, "10,430", got["bottom_ft"])
	assert.Equal(t, "35", got["stimulation_stages"])
	assert.Equal(t, "18,250.5", got["volume"])
	assert.Equal(t, "bbls", got["volume_units"])
	assert.Equal(t, "Slickwater", got["type_treatment"])
	assert.Equal(t, "15% HCL", got["acid"])
	assert.Equal(t, "3,500,000", got["lbs_proppant"])
	assert.Equal(t, "8,750", got["max_treatment_pressure"])
	assert.Equal(t, "42.5", got["max_treatment_rate"])
	assert.Equal(t, "Pumped pad followed by proppant ramp.", got["details"])
}

func TestExtractFirstMatchWins(t *testing.T) {
	// Both the specific and relaxed operator patterns would match;
	// later patterns must stay untried once one succeeds.
	text := "Operator Name: First Co\nOperator Second Co\n"
	got := Extract(text, WellFields)
	assert.Equal(t, "First Co", got["operator"])
}

func TestExtractAbsentFieldsHaveNoKey(t *testing.T) {
	got := Extract("nothing to see here", WellFields)
	for name, v := range got {
		t.Errorf("unexpected field %q = %q", name, v)
	}
}

func TestExtractWellCombinedLatLongOverridesSingles(t *testing.T) {
	// The single-field cascades latch onto the stray first coordinate;
	// the combined same-line pair must override it.
	text := "Latitude: 9.100000\n" + strings.Repeat("x", 60) +
		"\nLatitude: 1.000000 Longitude: 2.000000\n"
	got := ExtractWell(text, WellFields)
	assert.Equal(t, "1.000000", got["latitude"])
	assert.Equal(t, "2.000000", got["longitude"])
}

func TestExtractWellRecoversAPIWhenCascadeMisses(t *testing.T) {
	text := "Report for well 4212345678 dated yesterday"
	got := ExtractWell(text, WellFields)
	assert.Equal(t, "42-123-45678", got["api"])
}

func TestExtractWellNoAPILeavesFieldAbsent(t *testing.T) {
	got := ExtractWell("Operator: Acme\n", WellFields)
	_, ok := got["api"]
	assert.False(t, ok)
}

func TestDetailsBlockCapture(t *testing.T) {
	// lower-case continuation lines belong to the block; the next
	// capitalized label ends it
	text := "Details: line one\nline two\nstill details\nOperator: Acme\n"
	got := ExtractStimulation(text, StimFields)
	require.Contains(t, got, "details")
	assert.Equal(t, "line one\nline two\nstill details", got["details"])
}

func TestDetailsBlockRunsToEndOfText(t *testing.T) {
	text := "Details: only thing here\nand its continuation"
	got := ExtractStimulation(text, StimFields)
	assert.Equal(t, "only thing here\nand its continuation", got["details"])
}

func TestExtractStripsCarriageReturns(t *testing.T) {
	got := Extract("Operator: Acme Co\r\nDatum: NAD27\r\n", WellFields)
	assert.Equal(t, "Acme Co", got["operator"])
	assert.Equal(t, "NAD27", got["datum"])
}
