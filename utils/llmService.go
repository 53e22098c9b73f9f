package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"studybud/config"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// GeneratedQuestion is one quiz question as returned by the model, before
// validation and persistence.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
	Explanation   string   `json:"explanation"`
	Difficulty    int      `json:"difficulty"`
}

// GeneratedFlashcard is one flashcard as returned by the model.
type GeneratedFlashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

const quizSystemPrompt = `You are a quiz generator for a study assistant. Given study material, produce a JSON object with a "questions" array of 8 to 12 multiple choice questions. Each question has:
- "question": the question text
- "options": exactly 4 answer options
- "correct_option": the text of the correct option, copied verbatim from options
- "explanation": a short explanation of the correct answer
- "difficulty": an integer from 1 (easiest) to 100 (hardest)
Spread difficulties across the range so easier and harder questions are both available. Respond with JSON only.`

const flashcardSystemPrompt = `You are a flashcard generator for a study assistant. Given study material, produce a JSON object with a "flashcards" array of 10 to 20 cards. Each card has:
- "front": a short prompt, term or question
- "back": the answer or definition
Respond with JSON only.`

func newChatRequest(system, summary string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: config.AppConfig.OpenAIModel,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: "Study material:\n\n" + summary},
		},
	}
}

func chatCompletion(system, summary string) ([]byte, error) {
	client := openai.NewClient(config.AppConfig.OpenAIKey)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.AppConfig.LLMTimeoutSec)*time.Second)
	defer cancel()

	resp, err := client.CreateChatCompletion(ctx, newChatRequest(system, summary))
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("completion returned no choices")
	}

	return []byte(resp.Choices[0].Message.Content), nil
}

// GenerateQuizQuestions asks the model for a question batch and validates it.
// Either the whole batch is usable or an error is returned; callers persist
// all-or-nothing.
func GenerateQuizQuestions(summary string) ([]GeneratedQuestion, error) {
	body, err := chatCompletion(quizSystemPrompt, summary)
	if err != nil {
		return nil, err
	}

	var out struct {
		Questions []GeneratedQuestion `json:"questions"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse quiz response: %w", err)
	}
	if len(out.Questions) == 0 {
		return nil, fmt.Errorf("model returned no questions")
	}

	for i, q := range out.Questions {
		if err := validateGeneratedQuestion(q); err != nil {
			return nil, fmt.Errorf("question %d invalid: %w", i+1, err)
		}
	}

	return out.Questions, nil
}

func validateGeneratedQuestion(q GeneratedQuestion) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) != 4 {
		return fmt.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.Difficulty < 1 || q.Difficulty > 100 {
		return fmt.Errorf("difficulty %d out of range 1-100", q.Difficulty)
	}

	found := false
	for _, opt := range q.Options {
		if opt == q.CorrectOption {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("correct option is not one of the options")
	}

	return nil
}

// GenerateFlashcards asks the model for a flashcard batch.
func GenerateFlashcards(summary string) ([]GeneratedFlashcard, error) {
	body, err := chatCompletion(flashcardSystemPrompt, summary)
	if err != nil {
		return nil, err
	}

	var out struct {
		Flashcards []GeneratedFlashcard `json:"flashcards"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse flashcard response: %w", err)
	}
	if len(out.Flashcards) == 0 {
		return nil, fmt.Errorf("model returned no flashcards")
	}

	for i, card := range out.Flashcards {
		if strings.TrimSpace(card.Front) == "" || strings.TrimSpace(card.Back) == "" {
			return nil, fmt.Errorf("flashcard %d has an empty side", i+1)
		}
	}

	return out.Flashcards, nil
}
