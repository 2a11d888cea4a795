package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/domain"
)

// writeError traduce errores de dominio a status + ErrorResponse.
// notFound es el mensaje para ErrNotFound en el recurso del handler.
func writeError(c *fiber.Ctx, log zerolog.Logger, err error, notFound string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", notFound))
	case errors.Is(err, domain.ErrCategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("CATEGORY_NOT_FOUND", "Category not found"))
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("USER_EXISTS", domain.ErrUserAlreadyExists.Error()))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", "Invalid input"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("INVALID_CREDENTIALS", "Bad credentials"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.NewError("FORBIDDEN", "Access Denied"))
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", "Internal server error"))
	}
}

// paramID lee :id como int64 positivo. Si es inválido ya escribió la respuesta 400 y devuelve false.
func paramID(c *fiber.Ctx) (int64, bool, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_ID", "id must be a positive integer"))
	}
	return id, true, nil
}
