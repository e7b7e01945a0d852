package api

// ListSubmissionsResponse is one page of submissions plus pagination metadata.
// swagger:model api.ListSubmissionsResponse
type ListSubmissionsResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	Pagination  Pagination           `json:"pagination"`
}
