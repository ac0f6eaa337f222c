package response

import "food-preorder/internal/usecase/readmodel"

type SweepPreviewResponse struct {
	Candidates []readmodel.SweepCandidateRM `json:"candidates"`
	Total      int                          `json:"total"`
}

type SweepApplyResponse struct {
	Updated []readmodel.SweepResultRM `json:"updated"`
	Total   int                       `json:"total"`
}
