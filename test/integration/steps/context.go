// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budget-planner/backend/config"
	"github.com/budget-planner/backend/internal/application/usecase/calendar"
	"github.com/budget-planner/backend/internal/application/usecase/classification"
	"github.com/budget-planner/backend/internal/application/usecase/profile"
	"github.com/budget-planner/backend/internal/application/usecase/redistribution"
	"github.com/budget-planner/backend/internal/application/usecase/transaction"
	"github.com/budget-planner/backend/internal/domain/threshold"
	"github.com/budget-planner/backend/internal/infra/server/router"
	"github.com/budget-planner/backend/internal/integration/cache"
	"github.com/budget-planner/backend/internal/integration/entrypoint/controller"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-planner/backend/internal/integration/persistence"
	"github.com/budget-planner/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	requestHeaders map[string]string

	userID      uuid.UUID
	accessToken string

	history *mock.HistoryRepository
	cfg     *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// The redistribute rate limiter steps aside in the test environment.
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// newTestContext wires the full API over the shared in-memory database and
// miniredis, with a fresh user per scenario.
func newTestContext() (*TestContext, error) {
	db := mock.NewDb()
	if err := db.Reset(); err != nil {
		return nil, fmt.Errorf("failed to reset database: %w", err)
	}

	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		return nil, fmt.Errorf("failed to clear redis: %w", err)
	}

	cfg := config.Load()

	table, err := threshold.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load threshold table: %w", err)
	}

	profileRepo := persistence.NewProfileRepository(db.Conn)
	transactionRepo := persistence.NewTransactionRepository(db.Conn)
	planRepo := persistence.NewPlanRepository(db.Conn)
	history := mock.NewHistoryRepository()

	calendarCache := cache.NewCalendarCache(redisClient, cfg.Budget.CalendarCacheTTL)
	monthLock := cache.NewMonthLock(redisClient, cfg.Budget.RedistributionLockTTL)

	classifyUseCase := classification.NewClassifyIncomeUseCase(profileRepo, table, cfg.Budget.DefaultCountry)
	buildCalendarUseCase := calendar.NewBuildMonthCalendarUseCase(
		profileRepo, transactionRepo, planRepo, calendarCache, table,
	)
	redistributeUseCase := redistribution.NewRedistributeMonthUseCase(
		buildCalendarUseCase, planRepo, history, monthLock, calendarCache,
	)
	historyUseCase := redistribution.NewListHistoryUseCase(history)

	classificationController := controller.NewClassificationController(classifyUseCase)
	calendarController := controller.NewCalendarController(buildCalendarUseCase, redistributeUseCase, historyUseCase)
	profileController := controller.NewProfileController(
		profile.NewGetProfileUseCase(profileRepo),
		profile.NewUpsertProfileUseCase(profileRepo),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewCreateTransactionUseCase(transactionRepo, calendarCache),
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewDeleteTransactionUseCase(transactionRepo, calendarCache),
	)
	healthController := controller.NewHealthController(
		func() bool { return true },
		func() bool { return redisClient.Ping(context.Background()).Err() == nil },
	)

	r := router.NewRouter(
		healthController,
		classificationController,
		calendarController,
		profileController,
		transactionController,
		middleware.NewRateLimiter(),
		middleware.NewAuthMiddleware(cfg.JWT.Secret),
	)

	tc := &TestContext{
		requestHeaders: make(map[string]string),
		userID:         uuid.New(),
		history:        history,
		cfg:            cfg,
	}
	tc.engine = r.Setup("test")
	tc.server = httptest.NewServer(tc.engine)

	return tc, nil
}

// expandPlaceholders substitutes date placeholders so features stay valid in
// any month.
func expandPlaceholders(endpoint string) string {
	now := time.Now().UTC()
	endpoint = strings.ReplaceAll(endpoint, "{year}", strconv.Itoa(now.Year()))
	endpoint = strings.ReplaceAll(endpoint, "{month}", strconv.Itoa(int(now.Month())))
	endpoint = strings.ReplaceAll(endpoint, "{today}", now.Format("2006-01-02"))
	return endpoint
}

func (tc *TestContext) doRequest(method, endpoint string, body string) error {
	url := tc.server.URL + expandPlaceholders(endpoint)

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(expandPlaceholders(body))
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func (tc *TestContext) parsedBody() (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}
	return data, nil
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I have declared a financial profile:$`, iHaveDeclaredAFinancialProfile)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I delete the created transaction$`, iDeleteTheCreatedTransaction)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the calendar should cover every day of the month$`, theCalendarShouldCoverEveryDay)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iAmAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.accessToken = mock.SignToken(tc.cfg.JWT.Secret, tc.userID)
	return nil
}

func iAmNotAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return nil
}

func iHaveDeclaredAFinancialProfile(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.accessToken == "" {
		tc.accessToken = mock.SignToken(tc.cfg.JWT.Secret, tc.userID)
	}
	if err := tc.doRequest(http.MethodPut, "/api/v1/profile", body.Content); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to declare profile, status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(method, endpoint, "")
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(method, endpoint, body.Content)
}

func iDeleteTheCreatedTransaction(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	data, err := tc.parsedBody()
	if err != nil {
		return err
	}
	id, ok := data["id"].(string)
	if !ok || id == "" {
		return fmt.Errorf("previous response carries no transaction id: %s", string(tc.responseBody))
	}
	return tc.doRequest(http.MethodDelete, "/api/v1/transactions/"+id, "")
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf(
			"expected status %d, got %d. Body: %s",
			expectedStatus, tc.response.StatusCode, string(tc.responseBody),
		)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	data, err := tc.parsedBody()
	if err != nil {
		return err
	}
	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	data, err := tc.parsedBody()
	if err != nil {
		return err
	}
	if _, ok := data[field]; !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}
	return nil
}

func theCalendarShouldCoverEveryDay(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	data, err := tc.parsedBody()
	if err != nil {
		return err
	}

	year, okYear := data["year"].(float64)
	month, okMonth := data["month"].(float64)
	days, okDays := data["days"].([]interface{})
	if !okYear || !okMonth || !okDays {
		return fmt.Errorf("response is not a calendar: %s", string(tc.responseBody))
	}

	expected := time.Date(int(year), time.Month(int(month))+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if len(days) != expected {
		return fmt.Errorf("expected %d days for %d-%02d, got %d", expected, int(year), int(month), len(days))
	}
	return nil
}
