package handlers

import (
	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/internal/middleware"
	"foodgram/pkg/subscription"

	"github.com/gofiber/fiber/v2"
)

type (
	SubscriptionHandler interface {
		GetSubscriptions(c *fiber.Ctx) error
		Subscribe(c *fiber.Ctx) error
		Unsubscribe(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

func parseRecipesLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("recipes_limit", 0)
	if limit < 0 {
		return 0
	}
	return limit
}

func (h *subscriptionHandler) GetSubscriptions(c *fiber.Ctx) error {
	filter := domain.SubscriptionFilter{
		Pagination:   parsePagination(c),
		RecipesLimit: parseRecipesLimit(c),
	}

	res, count, err := h.subscriptionService.GetSubscriptions(c.UserContext(), filter, middleware.Viewer(c))
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetSubscriptions, err)
	}

	return presenters.SuccessResponse(c, paginated(res, filter.Pagination, count), fiber.StatusOK, domain.MessageSuccessGetSubscriptions)
}

func (h *subscriptionHandler) Subscribe(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubscribe, err)
	}

	res, err := h.subscriptionService.Subscribe(c.UserContext(), id, parseRecipesLimit(c), middleware.Viewer(c))
	if err != nil {
		return errorResponse(c, domain.MessageFailedSubscribe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubscribe)
}

func (h *subscriptionHandler) Unsubscribe(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnsubscribe, err)
	}

	if err := h.subscriptionService.Unsubscribe(c.UserContext(), id, middleware.Viewer(c)); err != nil {
		return errorResponse(c, domain.MessageFailedUnsubscribe, err)
	}

	return presenters.NoContentResponse(c)
}
