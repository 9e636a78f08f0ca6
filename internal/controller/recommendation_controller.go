package controller

import (
	"ai-stylist-be/internal/pkg/serverutils"
	"ai-stylist-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type recommendationController struct {
	recommendationService service.IRecommendationService
	authMiddleware        fiber.Handler
}

func NewRecommendationController(recommendationService service.IRecommendationService, authMiddleware fiber.Handler) IRecommendationController {
	return &recommendationController{
		recommendationService: recommendationService,
		authMiddleware:        authMiddleware,
	}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/recommendation/v1")
	h.Use(c.authMiddleware)
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *recommendationController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.recommendationService.List(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Recommendations", res))
}

func (c *recommendationController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid recommendation id"))
	}

	res, err := c.recommendationService.Show(ctx.Context(), userId, id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Recommendation", res))
}
