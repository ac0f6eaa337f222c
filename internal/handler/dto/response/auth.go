package response

import "food-preorder/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *readmodel.AuthorizedUserRM `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
