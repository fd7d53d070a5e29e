package request

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

// UpdateReviewRequest changes only the fields that are present
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitnil,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitnil,max=1000"`
}
