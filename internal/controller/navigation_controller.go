package controller

import (
	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/pkg/serverutils"
	"ai-stylist-be/pkg/navigation"

	"github.com/gofiber/fiber/v2"
)

// INavigationController exposes the derived navigation state so the app
// shell can pick the active screen without re-deriving it client side.
type INavigationController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
}

type navigationController struct {
	nav *navigation.Controller
}

func NewNavigationController(nav *navigation.Controller) INavigationController {
	return &navigationController{nav: nav}
}

func (c *navigationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/navigation/v1")
	h.Get("state", c.State)
}

func (c *navigationController) State(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Navigation state", dto.NavigationStateResponse{
		State: c.nav.Current().String(),
	}))
}
