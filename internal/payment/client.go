package payment

import (
	"encoding/json"
	"fmt"
	"time"

	"oakcraft/internal/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Client talks to the hosted payment provider. The provider holds card
// details; we only ever see an intent reference and its status.
type Client interface {
	CreateIntent(orderID, amount, currency string) (*Intent, error)
	GetIntent(reference string) (*Intent, error)
}

type Intent struct {
	Reference   string `json:"reference"`
	Status      string `json:"status"` // pending, succeeded, failed
	RedirectURL string `json:"redirect_url,omitempty"`
}

type HTTPClient struct {
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

func NewClient(cfg *config.Config, logger *zap.Logger) Client {
	return &HTTPClient{
		baseURL: cfg.PaymentAPIURL,
		apiKey:  cfg.PaymentAPIKey,
		logger:  logger,
	}
}

type createIntentRequest struct {
	OrderID  string `json:"order_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (c *HTTPClient) CreateIntent(orderID, amount, currency string) (*Intent, error) {
	body, err := json.Marshal(createIntentRequest{
		OrderID:  orderID,
		Amount:   amount,
		Currency: currency,
	})
	if err != nil {
		return nil, err
	}

	agent := fiber.Post(c.baseURL + "/v1/intents")
	agent.Set("Authorization", "Bearer "+c.apiKey)
	agent.ContentType("application/json")
	agent.Body(body)
	agent.Timeout(15 * time.Second)

	status, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("payment provider unreachable: %w", errs[0])
	}
	if status != fiber.StatusOK && status != fiber.StatusCreated {
		c.logger.Error("payment intent creation rejected",
			zap.Int("status", status),
			zap.String("order_id", orderID))
		return nil, fmt.Errorf("payment provider returned status %d", status)
	}

	var intent Intent
	if err := json.Unmarshal(respBody, &intent); err != nil {
		return nil, fmt.Errorf("decoding payment response: %w", err)
	}
	return &intent, nil
}

func (c *HTTPClient) GetIntent(reference string) (*Intent, error) {
	agent := fiber.Get(c.baseURL + "/v1/intents/" + reference)
	agent.Set("Authorization", "Bearer "+c.apiKey)
	agent.Timeout(15 * time.Second)

	status, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("payment provider unreachable: %w", errs[0])
	}
	if status != fiber.StatusOK {
		return nil, fmt.Errorf("payment provider returned status %d", status)
	}

	var intent Intent
	if err := json.Unmarshal(respBody, &intent); err != nil {
		return nil, fmt.Errorf("decoding payment response: %w", err)
	}
	return &intent, nil
}
