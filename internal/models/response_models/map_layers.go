package response_models

type MapLayersResponse struct {
	Layers []string `json:"layers"`
}
