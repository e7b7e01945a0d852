package api

// SubmissionOwner is the public slice of a submission's owning user.
// swagger:model api.SubmissionOwner
type SubmissionOwner struct {
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
}
