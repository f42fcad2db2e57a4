package request_models

type ProfileUpdateRequest struct {
	Information string `json:"information"`
	Target      string `json:"target"`
}
