package usecase

import (
	"errors"
	"fmt"

	"movie-rater/pkg/utils"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrStore           = errors.New("review store unavailable")
	ErrAlreadyReviewed = errors.New("you have already reviewed this movie")
	ErrReviewNotFound  = errors.New("review not found")
)

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}

func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}
	return nil
}
