package handler

import "github.com/gofiber/fiber/v3"

// Every endpoint answers with the same envelope: {success, data, message}
// on the happy path, {success, error} otherwise.

func success(c fiber.Ctx, data any, message string) error {
	return c.JSON(fiber.Map{"success": true, "data": data, "message": message})
}

func ok(c fiber.Ctx, data any) error {
	return c.JSON(data)
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": msg})
}

func notFound(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": msg})
}

func internalError(c fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal server error"})
}
