package host

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// HTTP surface of the devnet: one generic call endpoint mirroring how
// transactions reach the contract on chain, plus convenience reads.

type callRequest struct {
	Sender  string          `json:"sender"`
	Payload json.RawMessage `json:"payload"`
}

type callResponse struct {
	Result *string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewServer builds the fiber app serving the given chain.
func NewServer(chain *Chain) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// POST /call/:method  {"sender": "...", "payload": {...}}
	app.Post("/call/:method", func(c *fiber.Ctx) error {
		var req callRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
		}
		if req.Sender == "" {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "sender is mandatory"})
		}

		result, err := chain.Invoke(req.Sender, c.Params("method"), string(req.Payload))
		if err != nil {
			var ab AbortError
			if errors.As(err, &ab) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{Error: ab.Msg})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: err.Error()})
		}
		return c.JSON(callResponse{Result: result})
	})

	// GET /games/:id is a read shortcut around b_get.
	app.Get("/games/:id", func(c *fiber.Ctx) error {
		payload := `{"gameId":` + c.Params("id") + `}`
		result, err := chain.Invoke("devnet:reader", "b_get", payload)
		if err != nil {
			var ab AbortError
			if errors.As(err, &ab) {
				return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: ab.Msg})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: err.Error()})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(*result)
	})

	app.Get("/games", func(c *fiber.Ctx) error {
		result, err := chain.Invoke("devnet:reader", "b_count", "")
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: err.Error()})
		}
		return c.JSON(fiber.Map{"count": *result})
	})

	return app
}
