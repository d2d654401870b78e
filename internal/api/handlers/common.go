package handlers

import (
	"errors"
	"strconv"

	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/internal/utils/logger"
	"foodgram/internal/utils/storage"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageLimit = 6
	maxPageLimit     = 100
)

var (
	badRequestErrors = []error{
		domain.ErrParseID,
		domain.ErrEmailAlreadyUsed,
		domain.ErrUsernameAlreadyUsed,
		domain.ErrInvalidCredentials,
		domain.ErrWrongCurrentPassword,
		domain.ErrTagSlugUsed,
		domain.ErrNoTags,
		domain.ErrDuplicateTag,
		domain.ErrUnknownTag,
		domain.ErrNoIngredients,
		domain.ErrDuplicateIngredient,
		domain.ErrUnknownIngredient,
		domain.ErrInvalidAmount,
		domain.ErrInvalidCookingTime,
		domain.ErrRecipeImageRequired,
		domain.ErrAlreadyFavorited,
		domain.ErrNotFavorited,
		domain.ErrAlreadyInShoppingCart,
		domain.ErrNotInShoppingCart,
		domain.ErrShoppingCartEmpty,
		domain.ErrSelfSubscription,
		domain.ErrAlreadySubscribed,
		domain.ErrNotSubscribed,
		storage.ErrFileTypeNotAllowed,
	}

	unauthorizedErrors = []error{
		domain.ErrTokenNotFound,
		domain.ErrTokenInvalid,
		domain.ErrTokenExpired,
		domain.ErrTokenRevoked,
	}

	forbiddenErrors = []error{
		domain.ErrUserNotAllowed,
		domain.ErrUnauthorizedRecipeAccess,
	}

	notFoundErrors = []error{
		domain.ErrUserNotFound,
		domain.ErrTagNotFound,
		domain.ErrIngredientNotFound,
		domain.ErrRecipeNotFound,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case isAny(err, badRequestErrors):
		return fiber.StatusBadRequest
	case isAny(err, unauthorizedErrors):
		return fiber.StatusUnauthorized
	case isAny(err, forbiddenErrors):
		return fiber.StatusForbidden
	case isAny(err, notFoundErrors):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, message string, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Path()).Msg(message)
	}
	return presenters.ErrorResponse(c, status, message, err)
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrParseID
	}
	return id, nil
}

func parsePagination(c *fiber.Ctx) domain.Pagination {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	limit := c.QueryInt("limit", defaultPageLimit)
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return domain.Pagination{Page: page, Limit: limit}
}

func paginated(results any, pagination domain.Pagination, count int64) presenters.PaginatedData {
	return presenters.PaginatedData{
		Results:    results,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		Count:      count,
		TotalPages: domain.TotalPages(count, pagination.Limit),
	}
}
