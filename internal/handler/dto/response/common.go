package response

import (
	"github.com/google/uuid"
)

// CreatedResponse is the uniform body for resource creation endpoints.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
