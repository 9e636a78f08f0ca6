package controller

import (
	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/pkg/serverutils"
	"ai-stylist-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Options(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
	authMiddleware fiber.Handler
}

func NewProfileController(profileService service.IProfileService, authMiddleware fiber.Handler) IProfileController {
	return &profileController{
		profileService: profileService,
		authMiddleware: authMiddleware,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile/v1")
	h.Use(c.authMiddleware)
	h.Get("options", c.Options)
	h.Get("", c.Show)
	h.Put("", c.Save)
}

func (c *profileController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.profileService.Get(ctx.Context(), userId)
	if err != nil {
		if err == service.ErrProfileNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Profile", res))
}

func (c *profileController) Save(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SaveProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.profileService.Save(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Profile saved", res))
}

func (c *profileController) Options(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Profile options", c.profileService.Options()))
}
