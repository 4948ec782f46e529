package dto

type HealthResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type SchemaResponse struct {
	Collections []string `json:"collections"`
	Notes       string   `json:"notes"`
}
