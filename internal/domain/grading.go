package domain

// NotAnsweredPlaceholder is shown in detail records for questions the
// learner left blank.
const NotAnsweredPlaceholder = "Not answered"

// QuestionResult is the per-question line of a grading report.
type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	Content       string `json:"content"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation,omitempty"`
}

// GradingResult is built fresh on every grading call and never persisted.
type GradingResult struct {
	ExamID          string
	ExamTitle       string
	Score           float64
	CorrectAnswers  int
	TotalQuestions  int
	DetailedResults []QuestionResult
}
