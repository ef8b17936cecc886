package dtos

type HealthCheckResponse struct {
	Status     string `json:"status"`
	Properties int    `json:"properties"`
}
