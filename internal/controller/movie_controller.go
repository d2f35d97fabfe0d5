package controller

import (
	"strconv"

	"github.com/Salaem66/pickme2/internal/dto"
	"github.com/Salaem66/pickme2/internal/pkg/serverutils"
	"github.com/Salaem66/pickme2/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMovieController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type movieController struct {
	movieService service.IMovieService
}

func NewMovieController(movieService service.IMovieService) IMovieController {
	return &movieController{
		movieService: movieService,
	}
}

func (c *movieController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/movie/v1")
	h.Get(":id", c.Show)
	// Catalog writes require an operator token.
	h.Post("", serverutils.JwtMiddleware, c.Create)
	h.Delete(":id", serverutils.JwtMiddleware, c.Delete)
}

func (c *movieController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMovieRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.movieService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create movie", res))
}

func (c *movieController) Show(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "movie id must be an integer")
	}

	res, err := c.movieService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "movie not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show movie", res))
}

func (c *movieController) Delete(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "movie id must be an integer")
	}

	if err := c.movieService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete movie", nil))
}
