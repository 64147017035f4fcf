package handler

import (
	"strconv"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/dto"
	"github.com/dohuubinh-oss/quizBinhBE/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler exposes the question endpoints.
type QuestionHandler struct {
	questionService service.QuestionService
}

func NewQuestionHandler(questionService service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// BulkImport godoc
// @Summary Bulk import questions
// @Description Validates the whole batch and persists it; any invalid question rejects the entire batch with the full error list
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.BulkImportQuestionsRequest true "Questions to import"
// @Success 201 {object} dto.BulkImportQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/questions/import [post]
func (h *QuestionHandler) BulkImport(c *fiber.Ctx) error {
	var req dto.BulkImportQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body.")
	}

	ids, err := h.questionService.BulkImportQuestions(c.Context(), req.Questions)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.BulkImportQuestionsResponse{
		Message: strconv.Itoa(len(ids)) + " questions imported successfully.",
		Created: ids,
	})
}

// Generate godoc
// @Summary Generate a question
// @Description Asks the generation model for a single question on the given topic, validates and persists it
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionRequest true "Generation parameters"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/questions/generate [post]
func (h *QuestionHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body.")
	}

	question, err := h.questionService.GenerateQuestion(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewQuestionResponse(question))
}
