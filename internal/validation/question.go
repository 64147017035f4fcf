// Package validation holds the pre-persistence checks for candidate
// question records. Validation runs before any bulk write; if a single
// question in a batch fails, the whole batch is rejected with every
// accumulated message.
package validation

import (
	"fmt"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/dto"
)

// ValidateQuestion checks the shape of one candidate question. index is
// the zero-based position in the batch; messages use 1-based positions
// for user-facing reporting. An empty result means the question is valid.
func ValidateQuestion(q dto.QuestionPayload, index int) []string {
	var errs []string
	label := fmt.Sprintf("Question #%d", index+1)

	if q.Category == "" {
		errs = append(errs, fmt.Sprintf("%s: missing field 'category'.", label))
	}
	// Part zero is a valid part number; only a null/absent part fails.
	if q.Part == nil {
		errs = append(errs, fmt.Sprintf("%s: missing field 'part'.", label))
	}
	if q.Format == "" {
		errs = append(errs, fmt.Sprintf("%s: missing field 'format'.", label))
	}
	if q.Metadata == nil || q.Metadata.Level == "" {
		errs = append(errs, fmt.Sprintf("%s: missing field 'metadata.level'.", label))
	} else if !domain.IsValidLevel(q.Metadata.Level) {
		errs = append(errs, fmt.Sprintf("%s: invalid level %q, must be one of Easy, Medium, Hard.", label, q.Metadata.Level))
	}

	if len(q.SubQuestions) == 0 {
		errs = append(errs, fmt.Sprintf("%s: must contain at least one sub-question in 'subQuestions'.", label))
		// Nothing left to check without sub-questions.
		return errs
	}

	for sqIndex, sq := range q.SubQuestions {
		subLabel := fmt.Sprintf("%s, sub-question #%d", label, sqIndex+1)
		if sq.Content == "" {
			errs = append(errs, fmt.Sprintf("%s: missing field 'content'.", subLabel))
		}
		if len(sq.CorrectAnswer) == 0 {
			errs = append(errs, fmt.Sprintf("%s: field 'correctAnswer' must be a non-empty array.", subLabel))
		}

		if q.Format == domain.FormatMultipleChoice {
			if len(sq.Options) < 2 {
				errs = append(errs, fmt.Sprintf("%s: MULTIPLE_CHOICE requires 'options' with at least 2 entries.", subLabel))
			} else {
				// A correct answer not listed as an option is an error,
				// not a silent fix.
				for _, answer := range sq.CorrectAnswer {
					if !contains(sq.Options, answer) {
						errs = append(errs, fmt.Sprintf("%s: correct answer %q is not present in 'options'.", subLabel, answer))
					}
				}
			}
		}
	}

	return errs
}

// ValidateQuestions runs every question through ValidateQuestion and
// accumulates all messages across the batch.
func ValidateQuestions(questions []dto.QuestionPayload) []string {
	var all []string
	for i, q := range questions {
		all = append(all, ValidateQuestion(q, i)...)
	}
	return all
}

func contains(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}
