package controller

import (
	"github.com/Salaem66/pickme2/internal/pkg/serverutils"
	"github.com/Salaem66/pickme2/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStatsController interface {
	RegisterRoutes(r fiber.Router)
	Stats(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type statsController struct {
	statsService service.IStatsService
}

func NewStatsController(statsService service.IStatsService) IStatsController {
	return &statsController{
		statsService: statsService,
	}
}

func (c *statsController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)

	h := r.Group("/stats/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Stats)
}

func (c *statsController) Stats(ctx *fiber.Ctx) error {
	res, err := c.statsService.GetStats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get stats", res))
}

func (c *statsController) Health(ctx *fiber.Ctx) error {
	res := c.statsService.Health(ctx.Context())
	if res.Status != "ok" {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(res)
	}
	return ctx.JSON(res)
}
