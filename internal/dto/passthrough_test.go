package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ProductRequest_KeepsUnknownFields(t *testing.T) {
	payload := `{"title":"Widget","category":"tools","price":9.99,"color":"red","dimensions":{"w":3,"h":5}}`

	var req ProductRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, "Widget", req.Title)
	assert.Equal(t, "tools", req.Category)
	assert.Equal(t, 9.99, req.Price)
	assert.Equal(t, "red", req.Attributes["color"])
	assert.Equal(t, map[string]interface{}{"w": float64(3), "h": float64(5)}, req.Attributes["dimensions"])
	assert.NotContains(t, req.Attributes, "title")
}

func Test_ProductResponse_FlattensAttributes(t *testing.T) {
	resp := ProductResponse{
		ID:         "64f0c6a9e13e4bde9d000001",
		Title:      "Widget",
		Category:   "tools",
		Price:      9.99,
		Attributes: map[string]interface{}{"color": "red"},
	}

	encoded, err := json.Marshal(resp)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &out))

	assert.Equal(t, "64f0c6a9e13e4bde9d000001", out["id"])
	assert.Equal(t, "Widget", out["title"])
	assert.Equal(t, "red", out["color"])
	assert.NotContains(t, out, "attributes")
}

func Test_OrderRequest_DropsClientTotalAndKeepsMetadata(t *testing.T) {
	payload := `{"items":[{"product_id":"64f0c6a9e13e4bde9d000001","quantity":2}],"total":0.01,"customer":{"name":"alice"}}`

	var req OrderRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	require.Len(t, req.Items, 1)
	assert.Equal(t, "64f0c6a9e13e4bde9d000001", req.Items[0].ProductID)
	assert.Equal(t, int64(2), req.Items[0].Quantity)

	assert.NotContains(t, req.Metadata, "total")
	assert.NotContains(t, req.Metadata, "items")
	assert.Equal(t, map[string]interface{}{"name": "alice"}, req.Metadata["customer"])
}
