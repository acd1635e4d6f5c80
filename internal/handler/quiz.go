package handler

import (
	"notesquiz/internal/domain"
	"notesquiz/internal/dto"
	"notesquiz/internal/logger"
	"notesquiz/internal/service"
	"notesquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
	storage   string
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator, storageBackend string) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
		storage:   storageBackend,
	}
}

// HealthCheck handles GET /
// Listing the store guarantees the data file or schema exists before the
// first quiz is created.
func (h *QuizHandler) HealthCheck(c *fiber.Ctx) error {
	if _, err := h.service.ListQuizzes(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Healthy",
		"storage": h.storage,
	})
}

// CreateQuiz handles POST /api/quizzes. It generates a deterministic quiz
// from the submitted notes and persists it; resubmitting identical notes
// returns the identical record.
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be valid JSON")
	}

	if errs := h.validator.ValidateCreateQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	quiz, err := h.service.CreateQuiz(c.Context(), &req)
	if err != nil {
		logger.Get().Error("Failed to create quiz",
			zap.Error(err),
			zap.Int("notes_len", len(req.Notes)),
		)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// GetQuiz handles GET /api/quizzes/:id
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return domain.NewInvalidInputError("quiz id is required")
	}

	quiz, err := h.service.GetQuiz(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// ListQuizzes handles GET /api/quizzes
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	list, err := h.service.ListQuizzes(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list quizzes", zap.Error(err))
		return err
	}
	return c.JSON(list)
}
