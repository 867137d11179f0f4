package response

type Health struct {
	Status   string `json:"status" example:"healthy"`
	Version  string `json:"version" example:"0.1.0"`
	Service  string `json:"service" example:"foreman"`
	Database string `json:"database" example:"available"`
}
