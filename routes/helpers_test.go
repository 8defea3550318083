package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/macadoo18/growing-up-server/config"
	"github.com/macadoo18/growing-up-server/models"
	"github.com/macadoo18/growing-up-server/routes"
	"github.com/macadoo18/growing-up-server/utils"
)

const testSecret = "test-jwt-secret"

// newTestApp builds the full router against a fresh in-memory database.
func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Child{}, &models.Meal{}, &models.Sleep{}))

	cfg := &config.Config{Env: "test", JWTSecret: testSecret}
	return routes.SetupRouter(cfg, db, nil), db
}

// testUserPasswords maps seeded usernames to their plaintext passwords.
var testUserPasswords = map[string]string{
	"beesly":  "heyPassword",
	"jimothy": "aNewPassword",
}

// seedUsers inserts two users with cheap bcrypt hashes and returns them.
func seedUsers(t *testing.T, db *gorm.DB) []models.User {
	t.Helper()

	users := []models.User{
		{FirstName: "pam", LastName: "halpert", Username: "beesly"},
		{FirstName: "jim", LastName: "halpert", Username: "jimothy"},
	}
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(testUserPasswords[users[i].Username]), bcrypt.MinCost)
		require.NoError(t, err)
		users[i].Password = string(hash)
		require.NoError(t, db.Create(&users[i]).Error)
	}
	return users
}

// seedChildren inserts two children for the first user and one for the second.
func seedChildren(t *testing.T, db *gorm.DB, users []models.User) []models.Child {
	t.Helper()

	children := []models.Child{
		{FirstName: "ryan", Age: 5, Weight: "12.20", Image: "https://example.com/ryan.jpg", UserID: users[0].ID},
		{FirstName: "cece", Age: 12, Weight: "15.78", Image: "https://example.com/cece.jpg", UserID: users[1].ID},
		{FirstName: "philip", Age: 3, Weight: "22.00", Image: "https://example.com/philip.jpg", UserID: users[0].ID},
	}
	for i := range children {
		require.NoError(t, db.Create(&children[i]).Error)
	}
	return children
}

// seedMeals inserts two meals for the first child and one for the second.
func seedMeals(t *testing.T, db *gorm.DB, children []models.Child) []models.Meal {
	t.Helper()

	meals := []models.Meal{
		{Notes: "fussy - fight to eat", Duration: "00:25:22", FoodType: "bottle", ChildID: children[0].ID},
		{Notes: "good job", Duration: "01:25:22", FoodType: "breast_fed", SideFed: "right", ChildID: children[0].ID},
		{Duration: "00:05:22", FoodType: "formula", ChildID: children[1].ID},
	}
	for i := range meals {
		meals[i].Date = time.Now()
		require.NoError(t, db.Create(&meals[i]).Error)
	}
	return meals
}

// seedSleeps inserts two sleeps for the first child and one for the second.
func seedSleeps(t *testing.T, db *gorm.DB, children []models.Child) []models.Sleep {
	t.Helper()

	sleeps := []models.Sleep{
		{Notes: "fussy - fight to sleep", Duration: "00:25:22", SleepType: "crying", SleepCategory: "bedtime", ChildID: children[0].ID},
		{Notes: "good job", Duration: "01:25:22", SleepType: "calm", SleepCategory: "nap", ChildID: children[0].ID},
		{Duration: "00:35:22", SleepType: "restless", SleepCategory: "nap", ChildID: children[1].ID},
	}
	for i := range sleeps {
		sleeps[i].Date = time.Now()
		require.NoError(t, db.Create(&sleeps[i]).Error)
	}
	return sleeps
}

func authHeader(t *testing.T, user models.User, secret string) string {
	t.Helper()

	token, err := utils.GenerateJWT(user.ID, user.Username, secret)
	require.NoError(t, err)
	return "Bearer " + token
}

// perform runs one request through the router. body may be nil; auth may be "".
func perform(t *testing.T, r *gin.Engine, method, path string, body interface{}, auth string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func requireError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, message, body["error"])
}
