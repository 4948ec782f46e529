package dto

import "encoding/json"

// ProductRequest is the catalog-management payload. Unknown JSON keys are kept
// in Attributes and persisted as-is.
type ProductRequest struct {
	Title      string
	Category   string
	Price      float64
	Attributes map[string]interface{}
}

func (r *ProductRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["title"]; ok {
		if err := json.Unmarshal(v, &r.Title); err != nil {
			return err
		}
	}
	if v, ok := raw["category"]; ok {
		if err := json.Unmarshal(v, &r.Category); err != nil {
			return err
		}
	}
	if v, ok := raw["price"]; ok {
		if err := json.Unmarshal(v, &r.Price); err != nil {
			return err
		}
	}

	delete(raw, "title")
	delete(raw, "category")
	delete(raw, "price")
	delete(raw, "id")

	if len(raw) > 0 {
		r.Attributes = make(map[string]interface{}, len(raw))
		for key, value := range raw {
			var decoded interface{}
			if err := json.Unmarshal(value, &decoded); err != nil {
				return err
			}
			r.Attributes[key] = decoded
		}
	}

	return nil
}
