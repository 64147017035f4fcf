package genai

import (
	"encoding/json"
	"strings"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/dto"
)

// CleanResponse strips leading/trailing code-fence markers and
// surrounding whitespace from a raw model response. Models regularly wrap
// JSON in ```json fences despite instructions not to.
func CleanResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// ParseGeneratedExam parses an import response into its intermediate
// form. Structural validation of the parsed content (examDetails present,
// non-empty questions) is the orchestrator's job; this only guarantees
// well-formed JSON of the right top-level shape.
func ParseGeneratedExam(raw string) (*dto.GeneratedExam, error) {
	cleaned := CleanResponse(raw)

	var payload dto.GeneratedExam
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, domain.NewUpstreamFormatError(
			"The generation model returned an invalid format. Please check the document structure and try again.", err)
	}
	return &payload, nil
}

// ParseGeneratedQuestion parses a single-question generation response.
func ParseGeneratedQuestion(raw string) (*dto.QuestionPayload, error) {
	cleaned := CleanResponse(raw)

	var payload dto.QuestionPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, domain.NewUpstreamFormatError(
			"The generation model returned an invalid question format.", err)
	}
	return &payload, nil
}
