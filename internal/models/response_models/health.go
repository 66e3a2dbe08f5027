package response_models

type HealthResponse struct {
	Status    string `json:"status"`
	Provinces int    `json:"provinces"`
}
