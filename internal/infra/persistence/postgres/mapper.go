package postgres

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// featuresToJSON serializes a feature list into a JSONB column value.
// A nil list is stored as an empty array, never as SQL NULL.
func featuresToJSON(features []string) datatypes.JSON {
	if features == nil {
		features = []string{}
	}

	raw, err := json.Marshal(features)
	if err != nil {
		// A []string cannot fail to marshal; keep the column valid regardless.
		return datatypes.JSON("[]")
	}

	return datatypes.JSON(raw)
}

// featuresFromJSON deserializes a JSONB column value back into a feature list.
func featuresFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var features []string
	if err := json.Unmarshal(raw, &features); err != nil {
		return []string{}
	}

	return features
}
