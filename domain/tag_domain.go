package domain

import (
	"errors"
)

var (
	MessageSuccessGetTags   = "success get tags"
	MessageSuccessGetTag    = "success get tag"
	MessageSuccessCreateTag = "tag created successfully"

	MessageFailedGetTags   = "failed to get tags"
	MessageFailedGetTag    = "failed to get tag"
	MessageFailedCreateTag = "failed to create tag"

	ErrTagNotFound  = errors.New("tag not found")
	ErrTagSlugUsed  = errors.New("tag slug already used")
	ErrNoTags       = errors.New("add at least one tag")
	ErrDuplicateTag = errors.New("tags must be unique")
	ErrUnknownTag   = errors.New("tag does not exist")
)

type (
	TagRequest struct {
		Name  string `json:"name" validate:"required,max=200"`
		Color string `json:"color" validate:"required,hexcolor,max=7"`
		Slug  string `json:"slug" validate:"required,slug,max=200"`
	}

	TagResponse struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
		Slug  string `json:"slug"`
	}
)
