package users

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler is the transport boundary: it decodes requests, invokes the
// service and maps the typed error kinds to HTTP statuses exactly once.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs the auth HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type signupRequest struct {
	Name string `json:"name"`
	// Deprecated alias kept for the pre-/api clients.
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Country  string `json:"country"`
	State    string `json:"state"`
	City     string `json:"city"`
	Village  string `json:"village"`
	Password string `json:"password"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	LoginType  string `json:"login_type"`
}

type authResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    *Profile `json:"user,omitempty"`
}

// SignUp handles POST /api/signup.
func (h *Handler) SignUp(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, http.StatusBadRequest, authResponse{Message: "invalid request body"})
	}
	name := req.Name
	if name == "" {
		name = req.FullName
	}
	profile, err := h.service.SignUp(c.UserContext(), SignUpInput{
		Name:     name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Country:  req.Country,
		State:    req.State,
		City:     req.City,
		Village:  req.Village,
		Password: req.Password,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return respond(c, http.StatusOK, authResponse{
		Success: true,
		Message: "signup successful",
		User:    &profile,
	})
}

// Login handles POST /api/login.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, http.StatusBadRequest, authResponse{Message: "invalid request body"})
	}
	profile, err := h.service.Login(c.UserContext(), LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
		LoginType:  req.LoginType,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return respond(c, http.StatusOK, authResponse{
		Success: true,
		Message: "login successful",
		User:    &profile,
	})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	switch KindOf(err) {
	case KindValidation, KindConflict:
		status = http.StatusBadRequest
	case KindUnauthorized:
		status = http.StatusUnauthorized
	default:
		requestID, _ := c.Locals("X-Request-ID").(string)
		h.logger.Error("auth request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
	}
	return respond(c, status, authResponse{Message: MessageOf(err)})
}

func respond(c *fiber.Ctx, status int, body authResponse) error {
	return c.Status(status).JSON(body)
}
