package fields

// The cascades are deliberately relaxed: report templates vary in
// wording and separator use, and OCR output mangles both. Patterns are
// ordered most-specific first; the first one whose capture group hits
// non-empty text wins and later ones are never tried.

// WellFields drives extraction of well header data.
var WellFields = Table{
	{Name: "operator", Kind: String, MaxLen: 255, Patterns: []string{
		`Operator(?: Name)?[:#\s-]+(.+)`,
		`Operator\s+(.*)`,
	}},
	{Name: "well_name", Kind: String, MaxLen: 255, Patterns: []string{
		`Well(?: Name)?(?: & Number)?[:#\s-]+(.+)`,
		`Well\s+Name\s*/\s*Number[:#\s-]+(.+)`,
	}},
	{Name: "api", Kind: API, MaxLen: 64, Identity: true, Patterns: []string{
		`API(?:\s*Number|\s*No\.?|\s*#)?[:#\s-]*([0-9-]{5,})`,
		`API(?:\s*Number|\s*No\.?|\s*#)?[:#\s-]*([0-9\s-]{5,})`,
	}},
	{Name: "enseco_job", Kind: String, MaxLen: 64, Patterns: []string{
		`Enseco\s*Job\s*#[:#\s-]+(\S+)`,
	}},
	{Name: "job_type", Kind: String, MaxLen: 255, Patterns: []string{
		`Job\s*Type[:#\s-]+(.+)`,
		`Type of Job[:#\s-]+(.+)`,
	}},
	{Name: "county_state", Kind: String, MaxLen: 255, Patterns: []string{
		`County,?\s*State[:#\s-]+(.+)`,
		`County[:#\s-]+(.+)`,
	}},
	{Name: "shl", Kind: String, Patterns: []string{
		`Surface\s*Hole\s*Location\s*\(SHL\)[:#\s-]+(.+)`,
	}},
	{Name: "latitude", Kind: Float, Patterns: []string{
		`Latitude[:#\s-]+(-?\d+\.\d+)`,
		`Lat(?:itude)?[:#\s-]+(-?\d+\.\d+)`,
	}},
	{Name: "longitude", Kind: Float, Patterns: []string{
		`Longitude[:#\s-]+(-?\d+\.\d+)`,
		`Long(?:itude)?[:#\s-]+(-?\d+\.\d+)`,
	}},
	{Name: "datum", Kind: String, MaxLen: 255, Patterns: []string{
		`Datum[:#\s-]+(.+)`,
	}},
}

// StimFields drives extraction of stimulation treatment data.
var StimFields = Table{
	{Name: "date_stimulated", Kind: Date, Identity: true, Patterns: []string{
		`Date\s*Stimulated[:#\s-]+(.+)`,
		`Stimulated\s*Date[:#\s-]+(.+)`,
	}},
	{Name: "stimulated_formation", Kind: String, MaxLen: 255, Patterns: []string{
		`Stimulated\s*Formation[:#\s-]+(.+)`,
		`Formation[:#\s-]+(.+)`,
	}},
	{Name: "top_ft", Kind: Float, Patterns: []string{
		`Top\s*\(ft\)[:#\s-]+([\d,]+)`,
		`Top[:#\s-]+([\d,]+)\s*ft`,
	}},
	{Name: "bottom_ft", Kind: Float, Patterns: []string{
		`Bottom\s*\(ft\)[:#\s-]+([\d,]+)`,
		`Bottom[:#\s-]+([\d,]+)\s*ft`,
	}},
	{Name: "stimulation_stages", Kind: Int, Patterns: []string{
		`Stimulation\s*Stages[:#\s-]+(\d+)`,
		`Stages[:#\s-]+(\d+)`,
	}},
	{Name: "volume", Kind: Float, Patterns: []string{
		`Volume\s*\(?(?:bbls|gal|m3)?\)?[:#\s-]+([\d,]+(?:\.\d+)?)`,
		`Total\s*Volume[:#\s-]+([\d,]+(?:\.\d+)?)`,
	}},
	{Name: "volume_units", Kind: String, MaxLen: 32, Patterns: []string{
		`Volume\s*(?:\(([^)]+)\))`,
		`Volume\s*Units[:#\s-]+(\w+)`,
	}},
	{Name: "type_treatment", Kind: String, MaxLen: 255, Patterns: []string{
		`Type\s*Treatment[:#\s-]+(.+)`,
		`Treatment\s*Type[:#\s-]+(.+)`,
	}},
	{Name: "acid", Kind: String, MaxLen: 255, Patterns: []string{
		`Acid[:#\s-]+(.+)`,
		`Acid\s*Type[:#\s-]+(.+)`,
	}},
	{Name: "lbs_proppant", Kind: Float, Patterns: []string{
		`Lbs?\.?\s*Proppant[:#\s-]+([\d,]+)`,
		`Proppant[:#\s-]+([\d,]+)`,
	}},
	{Name: "max_treatment_pressure", Kind: Float, Patterns: []string{
		`Max(?:imum)?\s*Treatment\s*Pressure[:#\s-]+([\d,]+)`,
	}},
	{Name: "max_treatment_rate", Kind: Float, Patterns: []string{
		`Max(?:imum)?\s*Treatment\s*Rate[:#\s-]+([\d,]+(?:\.\d+)?)`,
	}},
	{Name: "details", Kind: String, MaxLen: 65500, Block: true, Patterns: []string{
		`Details[:#\s-]+(.+)`,
	}},
}
