package quizController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"studybud/config"
	"studybud/database"
	"studybud/middleware"
	"studybud/models"
	quizValidator "studybud/validators/quiz"
	resourceValidator "studybud/validators/resource"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 10,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // single in-memory database

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/quiz/:id/next", middleware.JWTMiddleware, quizValidator.NextQuestion(), GetNextQuestion)
	app.Post("/quiz/question/:id/answer", middleware.JWTMiddleware, quizValidator.SubmitAnswer(), SubmitAnswer)
	app.Post("/quiz/:id/result", middleware.JWTMiddleware, quizValidator.SubmitResult(), SubmitQuizResult)

	return app
}

func createTestUser(t *testing.T, experience uint) (models.User, string) {
	t.Helper()

	user := models.User{
		Name:       "Test Student",
		Email:      fmt.Sprintf("student-%s@example.com", t.Name()),
		Password:   "hashed",
		Experience: experience,
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return user, token
}

func createTestQuiz(t *testing.T, difficulties ...int) (models.Quiz, []models.Question) {
	t.Helper()
	db := database.Database.Db

	resource := models.Resource{UserID: 1, Title: "Notes", Summary: "summary"}
	require.NoError(t, db.Create(&resource).Error)

	quiz := models.Quiz{ResourceID: resource.ID}
	require.NoError(t, db.Create(&quiz).Error)

	options, _ := json.Marshal([]string{"Paris", "London", "Berlin", "Madrid"})
	questions := make([]models.Question, len(difficulties))
	for i, d := range difficulties {
		questions[i] = models.Question{
			QuizID:        quiz.ID,
			QuestionText:  fmt.Sprintf("Question %d?", i+1),
			Options:       datatypes.JSON(options),
			CorrectOption: "Paris",
			Explanation:   "Paris is the capital of France.",
			Difficulty:    d,
		}
	}
	require.NoError(t, db.Create(&questions).Error)

	return quiz, questions
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))

	return resp.StatusCode, parsed
}

func TestGetNextQuestionPicksLowestInWindow(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, 0)
	quiz, questions := createTestQuiz(t, 40, 45, 60, 70)

	// skill=50 gives window [35,65]: 70 is out, 40 is the easiest in-window
	status, resp := doRequest(t, app, http.MethodGet, fmt.Sprintf("/quiz/%d/next?skill=50", quiz.ID), token, nil)
	assert.Equal(t, http.StatusOK, status)

	var data struct {
		Exhausted bool `json:"exhausted"`
		Question  struct {
			ID         uint `json:"id"`
			Difficulty int  `json:"difficulty"`
		} `json:"question"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.False(t, data.Exhausted)
	assert.Equal(t, 40, data.Question.Difficulty)

	// Excluding the easiest question moves selection to the next easiest
	status, resp = doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/quiz/%d/next?skill=50&exclude=%d", quiz.ID, questions[0].ID), token, nil)
	assert.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 45, data.Question.Difficulty)
	assert.NotEqual(t, questions[0].ID, data.Question.ID)
}

func TestGetNextQuestionExhausted(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, 0)
	quiz, questions := createTestQuiz(t, 40, 45, 60)

	exclude := fmt.Sprintf("%d,%d,%d", questions[0].ID, questions[1].ID, questions[2].ID)
	status, resp := doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/quiz/%d/next?skill=50&exclude=%s", quiz.ID, exclude), token, nil)
	assert.Equal(t, http.StatusOK, status)

	var data struct {
		Exhausted bool `json:"exhausted"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data.Exhausted)
}

func TestGetNextQuestionWindowClamped(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, 0)
	quiz, _ := createTestQuiz(t, 1, 20, 99)

	// skill=0 clamps to [1,15]: only the difficulty-1 question qualifies
	status, resp := doRequest(t, app, http.MethodGet, fmt.Sprintf("/quiz/%d/next?skill=0", quiz.ID), token, nil)
	assert.Equal(t, http.StatusOK, status)

	var data struct {
		Exhausted bool `json:"exhausted"`
		Question  struct {
			Difficulty int `json:"difficulty"`
		} `json:"question"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 1, data.Question.Difficulty)

	// skill=100 clamps to [85,100]
	status, resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/quiz/%d/next?skill=100", quiz.ID), token, nil)
	assert.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 99, data.Question.Difficulty)
}

func TestGetNextQuestionValidation(t *testing.T) {
	app := setupTestApp(t)
	_, token := createTestUser(t, 0)
	quiz, _ := createTestQuiz(t, 50)

	status, _ := doRequest(t, app, http.MethodGet, fmt.Sprintf("/quiz/%d/next", quiz.ID), token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = doRequest(t, app, http.MethodGet, fmt.Sprintf("/quiz/%d/next?skill=140", quiz.ID), token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = doRequest(t, app, http.MethodGet, fmt.Sprintf("/quiz/%d/next?skill=50", quiz.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestSubmitAnswerGrading(t *testing.T) {
	app := setupTestApp(t)
	user, token := createTestUser(t, 0)
	_, questions := createTestQuiz(t, 50)
	question := questions[0]

	var data struct {
		IsCorrect     bool   `json:"is_correct"`
		CorrectOption string `json:"correct_option"`
		Explanation   string `json:"explanation"`
	}

	// Exact match is correct
	status, resp := doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/quiz/question/%d/answer", question.ID), token,
		fiber.Map{"selected_option": "Paris"})
	assert.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data.IsCorrect)
	assert.Equal(t, "Paris", data.CorrectOption)
	assert.NotEmpty(t, data.Explanation)

	// Case-different match is wrong: grading is an exact string comparison
	status, resp = doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/quiz/question/%d/answer", question.ID), token,
		fiber.Map{"selected_option": "paris"})
	assert.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.False(t, data.IsCorrect)

	// Attempts are recorded as an audit trail
	var attemptCount int64
	database.Database.Db.Model(&models.QuestionAttempt{}).
		Where("user_id = ? AND question_id = ?", user.ID, question.ID).
		Count(&attemptCount)
	assert.Equal(t, int64(2), attemptCount)
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	app := setupTestApp(t)
	user, token := createTestUser(t, 0)

	status, _ := doRequest(t, app, http.MethodPost, "/quiz/question/9999/answer", token,
		fiber.Map{"selected_option": "Paris"})
	assert.Equal(t, http.StatusNotFound, status)

	// Nothing was recorded
	var attemptCount int64
	database.Database.Db.Model(&models.QuestionAttempt{}).
		Where("user_id = ?", user.ID).
		Count(&attemptCount)
	assert.Equal(t, int64(0), attemptCount)
}

func TestSubmitQuizResultPerfectScoreProgression(t *testing.T) {
	app := setupTestApp(t)
	user, token := createTestUser(t, 295)
	quiz, _ := createTestQuiz(t, 50)

	status, resp := doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/quiz/%d/result", quiz.ID), token,
		fiber.Map{"score": 100, "total_questions": 10})
	assert.Equal(t, http.StatusOK, status)

	var data struct {
		XPGained   uint   `json:"xp_gained"`
		Experience uint   `json:"experience"`
		Level      int    `json:"level"`
		LevelTitle string `json:"level_title"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))

	// 295 + 10 base + 20 perfect bonus = 325, which crosses into level 4
	assert.Equal(t, uint(30), data.XPGained)
	assert.Equal(t, uint(325), data.Experience)
	assert.Equal(t, 4, data.Level)
	assert.Equal(t, "Expert", data.LevelTitle)

	var stored models.User
	require.NoError(t, database.Database.Db.First(&stored, user.ID).Error)
	assert.Equal(t, uint(325), stored.Experience)
	assert.Equal(t, 4, stored.Level)

	var resultCount int64
	database.Database.Db.Model(&models.QuizResult{}).
		Where("user_id = ? AND quiz_id = ?", user.ID, quiz.ID).
		Count(&resultCount)
	assert.Equal(t, int64(1), resultCount)
}

func TestSubmitQuizResultNoLostUpdate(t *testing.T) {
	app := setupTestApp(t)
	user, token := createTestUser(t, 0)
	quiz, _ := createTestQuiz(t, 50)

	// The award is a SQL-level increment, so back-to-back completions both land
	for i := 0; i < 2; i++ {
		status, _ := doRequest(t, app, http.MethodPost,
			fmt.Sprintf("/quiz/%d/result", quiz.ID), token,
			fiber.Map{"score": 50, "total_questions": 10})
		assert.Equal(t, http.StatusOK, status)
	}

	var stored models.User
	require.NoError(t, database.Database.Db.First(&stored, user.ID).Error)
	assert.Equal(t, uint(20), stored.Experience)
}

func TestSubmitQuizResultValidation(t *testing.T) {
	app := setupTestApp(t)
	user, token := createTestUser(t, 0)
	quiz, _ := createTestQuiz(t, 50)

	// Missing score: rejected with no partial persistence
	status, _ := doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/quiz/%d/result", quiz.ID), token,
		fiber.Map{"total_questions": 10})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// Unknown quiz: rejected, nothing mutated
	status, _ = doRequest(t, app, http.MethodPost, "/quiz/9999/result", token,
		fiber.Map{"score": 50, "total_questions": 10})
	assert.Equal(t, http.StatusNotFound, status)

	var stored models.User
	require.NoError(t, database.Database.Db.First(&stored, user.ID).Error)
	assert.Equal(t, uint(0), stored.Experience)

	var resultCount int64
	database.Database.Db.Model(&models.QuizResult{}).Where("user_id = ?", user.ID).Count(&resultCount)
	assert.Equal(t, int64(0), resultCount)
}

func TestGenerateQuizIdempotent(t *testing.T) {
	app := setupTestApp(t)
	app.Post("/resource/:id/quiz", middleware.JWTMiddleware, resourceValidator.ResourceID(), GenerateQuiz)

	user, token := createTestUser(t, 0)
	db := database.Database.Db

	resource := models.Resource{UserID: user.ID, Title: "Notes", Summary: "some long enough study summary"}
	require.NoError(t, db.Create(&resource).Error)

	quiz := models.Quiz{ResourceID: resource.ID}
	require.NoError(t, db.Create(&quiz).Error)

	// A second creation request returns the existing quiz without touching the LLM
	status, resp := doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/resource/%d/quiz", resource.ID), token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Status)

	var existing models.Quiz
	require.NoError(t, json.Unmarshal(resp.Data, &existing))
	assert.Equal(t, quiz.ID, existing.ID)

	var quizCount int64
	db.Model(&models.Quiz{}).Where("resource_id = ?", resource.ID).Count(&quizCount)
	assert.Equal(t, int64(1), quizCount)
}
