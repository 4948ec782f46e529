package dto

import "encoding/json"

// ProductResponse flattens the attribute bag back next to the typed fields, so
// the wire shape mirrors whatever was stored plus the string id.
type ProductResponse struct {
	ID         string
	Title      string
	Category   string
	Price      float64
	Attributes map[string]interface{}
}

func (r ProductResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Attributes)+4)
	for key, value := range r.Attributes {
		out[key] = value
	}
	out["id"] = r.ID
	out["title"] = r.Title
	out["category"] = r.Category
	out["price"] = r.Price

	return json.Marshal(out)
}
