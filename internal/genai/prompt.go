// Package genai builds prompts for the external generation model and
// parses its responses. Prompt construction is pure string assembly;
// the network call lives behind domain.ContentGenerator.
package genai

import (
	"fmt"
	"strings"
)

const examImportPromptTemplate = `Act as an expert exam creator and data extractor. I will provide you with the full text content of an exam extracted from a Word document.
Your task is to analyze this text and convert it into a single, valid JSON object.

The text contains all the information about an exam, including its title, sections, and a series of questions with their options and correct answers.

CRITICAL INSTRUCTIONS:
1. Parse the Entire Text: read and understand the structure of the exam provided.
2. Identify Exam Details: extract the main title of the exam, determine its type (e.g., "TOEIC", "THPT", "ACADEMIC"), and estimate the duration in minutes (if not specified, make a reasonable guess based on the number of questions).
3. Process Each Question: for every question you find, extract the question content, the multiple-choice options, and the single correct answer.
4. Generate Explanations: for each question, you MUST generate a clear and concise explanation for why the correct answer is correct. This is a mandatory field.
5. Structure the Output: the final output MUST be a single, clean JSON object with no markdown formatting (like ` + "```json" + `), no comments, and no extra text before or after it. The JSON object must have the following structure:
{
  "examDetails": {
    "title": "(The extracted exam title)",
    "type": "(The determined exam type, e.g., TOEIC)",
    "duration": (The estimated duration in minutes, as a number),
    "sections": [
      {
        "sectionName": "(A suitable name for the section, e.g., Part 5: Incomplete Sentences)",
        "description": "(A brief description of the section)"
      }
    ]
  },
  "questions": [
    {
      "category": "(The exam type, e.g., TOEIC)",
      "part": (The part number, e.g., 5, infer if possible),
      "format": "MULTIPLE_CHOICE",
      "subQuestions": [{
        "content": "(The question content)",
        "options": ["(Option A)", "(Option B)", "(Option C)", "(Option D)"],
        "correctAnswer": ["(The text of the correct answer)"],
        "explanation": "(The explanation you generated)"
      }],
      "metadata": {
        "level": "(Estimate the difficulty, e.g., Medium)"
      }
    }
  ]
}

HERE IS THE EXAM TEXT:
------------------------------------
%s
------------------------------------

Now, generate the complete JSON object based on the text provided.`

// BuildExamImportPrompt embeds the extracted document text into the
// import instruction template. Deterministic: identical input text yields
// identical prompt text.
func BuildExamImportPrompt(examText string) string {
	return fmt.Sprintf(examImportPromptTemplate, examText)
}

// QuestionPromptParams drive single-question generation.
type QuestionPromptParams struct {
	Topic    string
	Level    string
	Part     int
	Category string
	Format   string
}

const questionPromptTemplate = `Act as an expert exam question author. Create exactly one new question with the following characteristics:

- Topic: %s
- Difficulty level: %s
- Part: %d
- Category: %s
- Format: %s

Your entire response MUST be a single, clean JSON object with no markdown formatting (like ` + "```json" + `), no comments, and no extra text before or after it, matching this structure:
{
  "category": "%s",
  "part": %d,
  "format": "%s",
  "subQuestions": [{
    "content": "(The question content)",
    "options": ["(Option A)", "(Option B)", "(Option C)", "(Option D)"],
    "correctAnswer": ["(The text of the correct answer)"],
    "explanation": "(A clear and concise explanation for why the correct answer is correct)"
  }],
  "metadata": {
    "level": "%s"
  }
}

For non MULTIPLE_CHOICE formats, omit the "options" array. The "correctAnswer" array and the "explanation" are mandatory in every case.`

// BuildQuestionPrompt embeds the generation parameters into the
// single-question instruction template. Deterministic for equal params.
func BuildQuestionPrompt(p QuestionPromptParams) string {
	topic := strings.TrimSpace(p.Topic)
	return fmt.Sprintf(questionPromptTemplate,
		topic, p.Level, p.Part, p.Category, p.Format,
		p.Category, p.Part, p.Format, p.Level,
	)
}
