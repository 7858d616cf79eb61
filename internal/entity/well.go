package entity

// Well is the canonical subject entity. The API number is the sole
// dedup key; a Well never exists without one.
type Well struct {
	ID           int64         `json:"id"`
	API          string        `json:"api"`
	Operator     *string       `json:"operator"`
	WellName     *string       `json:"well_name"`
	EnsecoJob    *string       `json:"enseco_job"`
	JobType      *string       `json:"job_type"`
	CountyState  *string       `json:"county_state"`
	SHL          *string       `json:"shl"`
	Latitude     *float64      `json:"latitude"`
	Longitude    *float64      `json:"longitude"`
	Datum        *string       `json:"datum"`
	Stimulations []Stimulation `json:"stimulations"`
}

// Stimulation is one treatment event, exclusively owned by its Well.
// (WellID, DateStimulated) is the dedup identity; dateless rows have
// no identity and are always appended.
type Stimulation struct {
	ID                   int64    `json:"id"`
	WellID               int64    `json:"-"`
	DateStimulated       *Date    `json:"date_stimulated"`
	StimulatedFormation  *string  `json:"stimulated_formation"`
	TopFt                *float64 `json:"top_ft"`
	BottomFt             *float64 `json:"bottom_ft"`
	StimulationStages    *int64   `json:"stimulation_stages"`
	Volume               *float64 `json:"volume"`
	VolumeUnits          *string  `json:"volume_units"`
	TypeTreatment        *string  `json:"type_treatment"`
	Acid                 *string  `json:"acid"`
	LbsProppant          *float64 `json:"lbs_proppant"`
	MaxTreatmentPressure *float64 `json:"max_treatment_pressure"`
	MaxTreatmentRate     *float64 `json:"max_treatment_rate"`
	Details              *string  `json:"details"`
}
