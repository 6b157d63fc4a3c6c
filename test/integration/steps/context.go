// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/forecast/internal/application/usecase/expense"
	"github.com/finance-tracker/forecast/internal/application/usecase/forecast"
	"github.com/finance-tracker/forecast/internal/application/usecase/subscription"
	"github.com/finance-tracker/forecast/internal/infra/server/router"
	"github.com/finance-tracker/forecast/internal/integration/cache"
	"github.com/finance-tracker/forecast/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/forecast/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/forecast/internal/integration/persistence"
	"github.com/finance-tracker/forecast/internal/integration/persistence/model"
	"github.com/finance-tracker/forecast/test/integration/mock"
)

// Shared across scenarios; the database and cache are wiped between them.
var (
	serverOnce  sync.Once
	testServer  *httptest.Server
	testDB      *mock.Db
	redisClient *redis.Client
)

// TestContext holds the per-scenario request and response state.
type TestContext struct {
	userID       string
	headers      map[string]string
	response     *http.Response
	responseBody []byte
}

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

// startServer wires the full API over an in-memory database and an
// in-process Redis, then serves it from an httptest server.
func startServer() {
	testDB = mock.NewDb([]any{
		&model.ExpenseModel{},
		&model.SubscriptionModel{},
		&model.ForecastRuleModel{},
		&model.MonthlyForecastModel{},
	})
	redisClient = mock.NewRedis()

	expenseRepo := persistence.NewExpenseRepository(testDB.DbConn)
	subscriptionRepo := persistence.NewSubscriptionRepository(testDB.DbConn)
	ruleRepo := persistence.NewForecastRuleRepository(testDB.DbConn)
	forecastRepo := persistence.NewMonthlyForecastRepository(testDB.DbConn)
	forecastCache := cache.NewRedisForecastCache(redisClient)

	healthController := controller.NewHealthController(
		func() bool { return true },
		func() bool { return redisClient.Ping(context.Background()).Err() == nil },
	)
	expenseController := controller.NewExpenseController(
		expense.NewCreateExpenseUseCase(expenseRepo),
		expense.NewListExpensesUseCase(expenseRepo),
	)
	subscriptionController := controller.NewSubscriptionController(
		subscription.NewCreateSubscriptionUseCase(subscriptionRepo),
		subscription.NewListSubscriptionsUseCase(subscriptionRepo),
	)
	forecastController := controller.NewForecastController(
		forecast.NewGenerateForecastsUseCase(
			expenseRepo,
			subscriptionRepo,
			ruleRepo,
			forecastRepo,
			forecastCache,
			10*time.Minute,
		),
		forecast.NewListForecastsUseCase(forecastRepo),
		forecast.NewGenerateSuggestionsUseCase(expenseRepo, ruleRepo),
		forecast.NewListSuggestionsUseCase(ruleRepo),
	)

	r := router.NewRouter(healthController, expenseController, subscriptionController, forecastController)
	testServer = httptest.NewServer(r.Setup("test"))
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Disables rate limiting so scenarios can regenerate freely.
		os.Setenv("ENV", "test")
	})

	ctx.AfterSuite(func() {
		if testServer != nil {
			testServer.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		serverOnce.Do(startServer)

		if err := testDB.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		tc := &TestContext{
			headers: make(map[string]string),
		}
		return SetTestContext(ctx, tc), nil
	})

	registerAPISteps(ctx)
	registerLedgerSteps(ctx)
	registerResponseSteps(ctx)
}

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the acting user is "([^"]*)"$`, theActingUserIs)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" without a user header$`, iSendARequestToWithoutUser)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the ledger has (\d+) monthly "([^"]*)" entries of (\d+(?:\.\d+)?)$`, theLedgerHasMonthlyEntries)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, theResponseFieldShouldHaveItems)
}

// Step implementations

func theActingUserIs(ctx context.Context, userID string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.userID = userID
	return SetTestContext(ctx, tc), nil
}

// theLedgerHasMonthlyEntries seeds one ledger entry per month, walking
// backwards from today, through the public API.
func theLedgerHasMonthlyEntries(ctx context.Context, count int, category, amount string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	for i := 0; i < count; i++ {
		date := time.Now().UTC().AddDate(0, -i, 0).Format("2006-01-02")
		body := fmt.Sprintf(
			`{"date":%q,"name":"%s entry","amount":%s,"category":%q}`,
			date, category, amount, category,
		)
		if err := tc.doRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(body), true); err != nil {
			return ctx, err
		}
		if tc.response.StatusCode != http.StatusCreated {
			return ctx, fmt.Errorf("seeding entry failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
		}
	}

	return SetTestContext(ctx, tc), nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil, true); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, strings.NewReader(body.Content), true); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithoutUser(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil, false); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.headers[header] = value
	return SetTestContext(ctx, tc), nil
}

func (tc *TestContext) doRequest(method, endpoint string, body io.Reader, withUser bool) error {
	req, err := http.NewRequest(method, testServer.URL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.headers {
		req.Header.Set(key, value)
	}
	if withUser && tc.userID != "" {
		req.Header.Set(middleware.UserHeader, tc.userID)
	}

	resp, err := testServer.Client().Do(req)
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

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.lookupField(field)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	items, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field %q is not an array", field)
	}
	if len(items) != count {
		return fmt.Errorf("field %q expected %d items, got %d. Body: %s", field, count, len(items), string(tc.responseBody))
	}
	return nil
}

// lookupField navigates a dotted path through the response body. Numeric
// segments index into arrays, e.g. "suggestions.0.amount".
func (tc *TestContext) lookupField(path string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(tc.responseBody))
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("segment %q of %q is not an array index", segment, path)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index %d of %q out of range (%d items)", index, path, len(node))
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response. Body: %s", path, string(tc.responseBody))
		}
	}

	return current, nil
}
