package handler

import (
	"io"
	"strconv"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/dto"
	"github.com/dohuubinh-oss/quizBinhBE/internal/middleware"
	"github.com/dohuubinh-oss/quizBinhBE/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ExamHandler exposes the exam endpoints.
type ExamHandler struct {
	examService    service.ExamService
	importService  service.ImportService
	gradingService service.GradingService
}

func NewExamHandler(
	examService service.ExamService,
	importService service.ImportService,
	gradingService service.GradingService,
) *ExamHandler {
	return &ExamHandler{
		examService:    examService,
		importService:  importService,
		gradingService: gradingService,
	}
}

// ListExams godoc
// @Summary List exams
// @Description Returns a page of exams, newest first, optionally filtered by type and publication state
// @Tags exams
// @Produce json
// @Param type query string false "Exam type filter"
// @Param published query bool false "Publication state filter"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.ExamListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/exams [get]
func (h *ExamHandler) ListExams(c *fiber.Ctx) error {
	filter := domain.ExamFilter{
		Type:  c.Query("type"),
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 20),
	}
	if raw := c.Query("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.NewInvalidInputError("published must be true or false.")
		}
		filter.Published = &published
	}

	exams, err := h.examService.ListExams(c.Context(), filter)
	if err != nil {
		return err
	}

	resp := dto.ExamListResponse{
		Results: len(exams),
		Exams:   make([]dto.ExamResponse, 0, len(exams)),
	}
	for _, exam := range exams {
		resp.Exams = append(resp.Exams, dto.NewExamResponse(exam))
	}
	return c.JSON(resp)
}

// GetExam godoc
// @Summary Get an exam
// @Description Returns an exam with every question it references
// @Tags exams
// @Produce json
// @Param id path string true "Exam ID"
// @Success 200 {object} dto.ExamDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/exams/{id} [get]
func (h *ExamHandler) GetExam(c *fiber.Ctx) error {
	exam, questions, err := h.examService.GetExam(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	resp := dto.ExamDetailResponse{
		Exam:      dto.NewExamResponse(exam),
		Questions: make([]dto.QuestionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, dto.NewQuestionResponse(q))
	}
	return c.JSON(resp)
}

// CreateExam godoc
// @Summary Create an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.CreateExamRequest true "Exam definition"
// @Success 201 {object} dto.ExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/exams [post]
func (h *ExamHandler) CreateExam(c *fiber.Ctx) error {
	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body.")
	}

	authorID, _ := c.Locals(middleware.LocalUserID).(string)
	exam, err := h.examService.CreateExam(c.Context(), req, authorID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewExamResponse(exam))
}

// UpdateExam godoc
// @Summary Update an exam
// @Description Applies the provided fields to an existing exam; omitted fields are left untouched
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "Exam ID"
// @Param request body dto.UpdateExamRequest true "Fields to change"
// @Success 200 {object} dto.ExamResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/exams/{id} [patch]
func (h *ExamHandler) UpdateExam(c *fiber.Ctx) error {
	var req dto.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body.")
	}

	exam, err := h.examService.UpdateExam(c.Context(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewExamResponse(exam))
}

// DeleteExam godoc
// @Summary Delete an exam
// @Tags exams
// @Param id path string true "Exam ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/exams/{id} [delete]
func (h *ExamHandler) DeleteExam(c *fiber.Ctx) error {
	if err := h.examService.DeleteExam(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ImportFromWord godoc
// @Summary Import an exam from a Word document
// @Description Extracts the document text, structures it with the generation model, validates every question and persists the exam atomically
// @Tags exams
// @Accept multipart/form-data
// @Produce json
// @Param examFile formData file true "Word document (.docx)"
// @Success 201 {object} dto.ImportExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/exams/import-word [post]
func (h *ExamHandler) ImportFromWord(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("examFile")
	if err != nil {
		return domain.NewInvalidInputError("No file uploaded.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInvalidInputError("Failed to read the uploaded file.")
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInvalidInputError("Failed to read the uploaded file.")
	}

	authorID, _ := c.Locals(middleware.LocalUserID).(string)
	exam, count, err := h.importService.ImportExamFromDocument(c.Context(), fileData, authorID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ImportExamResponse{
		Message: "Exam imported successfully with " + strconv.Itoa(count) + " questions.",
		Exam:    dto.NewExamResponse(exam),
	})
}

// GradeExam godoc
// @Summary Grade a submission
// @Description Scores the submitted answers against the exam's answer key and returns a per-question breakdown
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "Exam ID"
// @Param request body dto.GradeExamRequest true "Answers keyed by question ID"
// @Success 200 {object} dto.GradeExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/exams/{id}/grade [post]
func (h *ExamHandler) GradeExam(c *fiber.Ctx) error {
	var req dto.GradeExamRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body.")
	}

	result, err := h.gradingService.GradeExam(c.Context(), c.Params("id"), req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewGradeExamResponse(result))
}
