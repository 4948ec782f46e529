package dto

import (
	"encoding/json"

	"github.com/nathanpras/storefront-service/internal/domain"
)

// OrderRequest carries the items plus arbitrary order metadata (customer info
// and the like), passed through to the stored record unchanged. A client-sent
// "total" is dropped here; the authoritative total is computed server-side.
type OrderRequest struct {
	Items    []domain.OrderItem
	Metadata map[string]interface{}
}

func (r *OrderRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["items"]; ok {
		if err := json.Unmarshal(v, &r.Items); err != nil {
			return err
		}
	}

	delete(raw, "items")
	delete(raw, "total")
	delete(raw, "id")

	if len(raw) > 0 {
		r.Metadata = make(map[string]interface{}, len(raw))
		for key, value := range raw {
			var decoded interface{}
			if err := json.Unmarshal(value, &decoded); err != nil {
				return err
			}
			r.Metadata[key] = decoded
		}
	}

	return nil
}
