package response_models

type ProfileResponse struct {
	Information string `json:"information"`
	Target      string `json:"target"`
}
