package domain

import (
	"errors"
)

var (
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessGetIngredient    = "success get ingredient"
	MessageSuccessCreateIngredient = "ingredient created successfully"

	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedGetIngredient    = "failed to get ingredient"
	MessageFailedCreateIngredient = "failed to create ingredient"

	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrNoIngredients       = errors.New("add at least one ingredient")
	ErrDuplicateIngredient = errors.New("ingredients must be unique")
	ErrUnknownIngredient   = errors.New("ingredient does not exist")
	ErrInvalidAmount       = errors.New("ingredient amount must be at least 1")
)

type (
	IngredientRequest struct {
		Name            string `json:"name" validate:"required,max=200"`
		MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
	}

	IngredientResponse struct {
		ID              int64  `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}
)
