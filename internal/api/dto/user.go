package dto

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Shared response for all create endpoints: the new record's id.
type CreateResponse struct {
	ID int64 `json:"id"`
}
