package service

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSON marshals a value into a JSON column payload
func toJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
