package responses

import "github.com/gofiber/fiber/v2"

// Envelope is the JSON shape every handler returns. Error responses
// carry only status and message.
type Envelope struct {
	Status  int        `json:"status"`
	Message string     `json:"message"`
	Result  *fiber.Map `json:"result,omitempty"`
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Status: status, Message: message})
}

func OK(c *fiber.Ctx, status int, message string, result *fiber.Map) error {
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Result: result})
}
