package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"purchase-tracker/internal/auth"
	"purchase-tracker/internal/config"
	"purchase-tracker/internal/domain"
	"purchase-tracker/internal/events"
	"purchase-tracker/internal/service"
	"purchase-tracker/internal/storage/mocks"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	router     *gin.Engine
	tokens     *auth.TokenService
	hasher     *auth.PasswordHasher
	users      *mocks.MockUserStorage
	categories *mocks.MockCategoryStorage
	methods    *mocks.MockPaymentMethodStorage
	locations  *mocks.MockPurchaseLocationStorage
	purchases  *mocks.MockPurchaseStorage
	events     *events.Recorder
}

func newTestEnv(t *testing.T, requireAuth bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	env := &testEnv{
		tokens:     auth.NewTokenService(config.Config{JWTSecret: "test", JWTExpiresIn: time.Hour}),
		hasher:     auth.NewPasswordHasher(bcrypt.MinCost),
		users:      mocks.NewMockUserStorage(ctrl),
		categories: mocks.NewMockCategoryStorage(ctrl),
		methods:    mocks.NewMockPaymentMethodStorage(ctrl),
		locations:  mocks.NewMockPurchaseLocationStorage(ctrl),
		purchases:  mocks.NewMockPurchaseStorage(ctrl),
		events:     &events.Recorder{},
	}
	env.router = NewRouter(service.Services{
		Users:          service.NewUserService(env.users, env.hasher),
		Categories:     service.NewCategoryService(env.categories),
		PaymentMethods: service.NewPaymentMethodService(env.methods),
		Locations:      service.NewPurchaseLocationService(env.locations),
		Purchases:      service.NewPurchaseService(env.purchases, env.events),
	}, env.tokens, requireAuth)
	return env
}

func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, false)
	rec := env.do(http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK || decode(t, rec)["status"] != "ok" {
		t.Errorf("health = %d %s", rec.Code, rec.Body)
	}
}

func TestInvalidIDNeverHitsStorage(t *testing.T) {
	env := newTestEnv(t, false)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/users/abc", ""},
		{http.MethodPut, "/api/categories/x1", `{"categoryName":"a"}`},
		{http.MethodDelete, "/api/payment-methods/1.5", ""},
		{http.MethodGet, "/api/purchase-locations/ten", ""},
		{http.MethodDelete, "/api/purchases/abc", ""},
	} {
		rec := env.do(tc.method, tc.path, tc.body, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s %s = %d, want 400", tc.method, tc.path, rec.Code)
		}
		if msg, _ := decode(t, rec)["message"].(string); !strings.HasPrefix(msg, "Invalid") {
			t.Errorf("%s %s message = %q", tc.method, tc.path, msg)
		}
	}
}

func TestGetMissingReturns404(t *testing.T) {
	env := newTestEnv(t, false)
	env.users.EXPECT().FindUser(gomock.Any(), 42).Return(nil, nil)
	env.purchases.EXPECT().FindPurchase(gomock.Any(), 42).Return(nil, nil)

	if rec := env.do(http.MethodGet, "/api/users/42", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("user = %d", rec.Code)
	}
	if rec := env.do(http.MethodGet, "/api/purchases/42", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("purchase = %d", rec.Code)
	}
}

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t, false)
	env.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in domain.UserCreate) (*domain.User, error) {
			return &domain.User{ID: 1, Name: in.Name, Email: in.Email, PasswordHash: in.PasswordHash}, nil
		})

	rec := env.do(http.MethodPost, "/api/users", `{"name":"João Silva","email":"joao.silva@example.com","password":"SenhaSegura123"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	body := decode(t, rec)
	if _, leaked := body["password"]; leaked {
		t.Error("password must not be serialized")
	}
	if body["email"] != "joao.silva@example.com" {
		t.Errorf("email = %v", body["email"])
	}
}

func TestCreateUserValidation(t *testing.T) {
	env := newTestEnv(t, false)

	for _, body := range []string{
		`{"name":"x","email":"x@example.com"}`,
		`{"name":"   ","email":"x@example.com","password":"p"}`,
		`{"name":"x","email":"not-an-email","password":"p"}`,
		`not json`,
	} {
		if rec := env.do(http.MethodPost, "/api/users", body, ""); rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t, false)
	env.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflict)

	rec := env.do(http.MethodPost, "/api/users", `{"name":"x","email":"dup@example.com","password":"p"}`, "")
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestUpdateEmptyBody(t *testing.T) {
	env := newTestEnv(t, false)

	for _, path := range []string{"/api/users/1", "/api/categories/1", "/api/purchase-locations/1", "/api/purchases/1"} {
		rec := env.do(http.MethodPut, path, `{}`, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("PUT %s {} = %d, want 400", path, rec.Code)
		}
	}
}

func TestUpdateMissingReturns404(t *testing.T) {
	env := newTestEnv(t, false)
	env.categories.EXPECT().UpdateCategory(gomock.Any(), 9, gomock.Any()).Return(nil, domain.ErrNotFound)

	rec := env.do(http.MethodPut, "/api/categories/9", `{"categoryName":"Lazer"}`, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestPaymentMethodUpdateRequiresBothFields(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(http.MethodPut, "/api/payment-methods/1", `{"paymentMethodName":"Pix"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteMissingReturns404(t *testing.T) {
	env := newTestEnv(t, false)
	env.users.EXPECT().DeleteUser(gomock.Any(), 999).Return(false, nil)
	env.categories.EXPECT().DeleteCategory(gomock.Any(), 999).Return(false, nil)
	env.methods.EXPECT().DeletePaymentMethod(gomock.Any(), 999).Return(false, nil)
	env.locations.EXPECT().DeletePurchaseLocation(gomock.Any(), 999).Return(false, nil)
	env.purchases.EXPECT().DeletePurchase(gomock.Any(), 999).Return(false, nil)

	for _, path := range []string{
		"/api/users/999",
		"/api/categories/999",
		"/api/payment-methods/999",
		"/api/purchase-locations/999",
		"/api/purchases/999",
	} {
		if rec := env.do(http.MethodDelete, path, "", ""); rec.Code != http.StatusNotFound {
			t.Errorf("DELETE %s = %d, want 404", path, rec.Code)
		}
	}
	if len(env.events.Events()) != 0 {
		t.Error("no event expected for a missing purchase")
	}
}

func TestDeleteExistingReturns204(t *testing.T) {
	env := newTestEnv(t, false)
	env.locations.EXPECT().DeletePurchaseLocation(gomock.Any(), 3).Return(true, nil)

	rec := env.do(http.MethodDelete, "/api/purchase-locations/3", "", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestDeleteReferencedReturns409(t *testing.T) {
	env := newTestEnv(t, false)
	env.categories.EXPECT().DeleteCategory(gomock.Any(), 1).Return(false, domain.ErrInUse)

	if rec := env.do(http.MethodDelete, "/api/categories/1", "", ""); rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestInternalErrorCarriesCause(t *testing.T) {
	env := newTestEnv(t, false)
	env.methods.EXPECT().ListPaymentMethods(gomock.Any()).Return(nil, errors.New("connection refused"))

	rec := env.do(http.MethodGet, "/api/payment-methods", "", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["error"] != "connection refused" || body["message"] == "" {
		t.Errorf("body = %v", body)
	}
}

const purchaseBody = `{
	"purchaseDate": "2025-06-01T10:00:00Z",
	"totalValue": 150.75,
	"description": "Compras de supermercado para o mês.",
	"userId": 1,
	"purchaseLocationId": 1,
	"expenses": [
		{"value": 50.25, "expenseDate": "2025-06-01T10:15:00Z", "description": "Arroz e feijão.", "expenseType": "Alimentos", "categoryId": 1, "userId": 1},
		{"value": 25.00, "expenseDate": "2025-06-01T10:30:00Z", "expenseType": "Alimentos", "categoryId": 1, "userId": 1}
	],
	"purchasePaymentMethods": [
		{"paidValue": 150.75, "paymentMethodId": 1}
	]
}`

// storedPurchase строит то, что вернула бы БД для create-входа.
func storedPurchase(id int, in domain.PurchaseCreate) *domain.Purchase {
	p := &domain.Purchase{
		ID:                 id,
		PurchaseDate:       in.PurchaseDate,
		TotalValue:         in.TotalValue,
		Description:        in.Description,
		UserID:             in.UserID,
		PurchaseLocationID: in.PurchaseLocationID,
	}
	for i, e := range in.Expenses {
		p.Expenses = append(p.Expenses, domain.Expense{
			ID: i + 1, Value: e.Value, ExpenseDate: e.ExpenseDate, Description: e.Description,
			ExpenseType: e.ExpenseType, PurchaseID: id, CategoryID: e.CategoryID, UserID: e.UserID,
		})
	}
	for i, a := range in.PurchasePaymentMethods {
		p.PurchasePaymentMethods = append(p.PurchasePaymentMethods, domain.PurchasePaymentMethod{
			ID: i + 1, PaidValue: a.PaidValue, PurchaseID: id, PaymentMethodID: a.PaymentMethodID,
		})
	}
	return p
}

func TestCreatePurchaseRoundTrip(t *testing.T) {
	env := newTestEnv(t, false)

	var saved *domain.Purchase
	env.purchases.EXPECT().
		CreatePurchase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in domain.PurchaseCreate) (*domain.Purchase, error) {
			if !in.TotalValue.Equal(decimal.RequireFromString("150.75")) {
				t.Errorf("totalValue = %s", in.TotalValue)
			}
			if len(in.Expenses) != 2 || len(in.PurchasePaymentMethods) != 1 {
				t.Errorf("children = %d/%d", len(in.Expenses), len(in.PurchasePaymentMethods))
			}
			if in.Expenses[1].Description != nil {
				t.Error("missing description must stay nil")
			}
			saved = storedPurchase(10, in)
			return saved, nil
		})
	env.purchases.EXPECT().
		FindPurchase(gomock.Any(), 10).
		DoAndReturn(func(context.Context, int) (*domain.Purchase, error) { return saved, nil })

	rec := env.do(http.MethodPost, "/api/purchases", purchaseBody, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body)
	}

	rec = env.do(http.MethodGet, "/api/purchases/10", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got struct {
		ID                     int     `json:"id"`
		TotalValue             float64 `json:"totalValue"`
		Expenses               []struct {
			Value      float64 `json:"value"`
			PurchaseID int     `json:"purchaseId"`
		} `json:"expenses"`
		PurchasePaymentMethods []struct {
			PaidValue  float64 `json:"paidValue"`
			PurchaseID int     `json:"purchaseId"`
		} `json:"purchasePaymentMethods"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}

	if got.ID != 10 || got.TotalValue != 150.75 {
		t.Errorf("header = %+v", got)
	}
	if len(got.Expenses) != 2 || got.Expenses[0].Value != 50.25 || got.Expenses[1].Value != 25 {
		t.Errorf("expenses = %+v", got.Expenses)
	}
	for _, e := range got.Expenses {
		if e.PurchaseID != 10 {
			t.Errorf("expense purchaseId = %d", e.PurchaseID)
		}
	}
	if len(got.PurchasePaymentMethods) != 1 || got.PurchasePaymentMethods[0].PurchaseID != 10 {
		t.Errorf("allocations = %+v", got.PurchasePaymentMethods)
	}

	evs := env.events.Events()
	if len(evs) != 1 || evs[0].Type != events.PurchaseCreated || evs[0].PurchaseID != 10 {
		t.Errorf("events = %+v", evs)
	}
}

func TestCreatePurchaseValidation(t *testing.T) {
	env := newTestEnv(t, false)

	for name, body := range map[string]string{
		"no expenses key": `{"purchaseDate":"2025-06-01T10:00:00Z","totalValue":1,"userId":1,"purchaseLocationId":1,"purchasePaymentMethods":[]}`,
		"no total":        `{"purchaseDate":"2025-06-01T10:00:00Z","userId":1,"purchaseLocationId":1,"expenses":[],"purchasePaymentMethods":[]}`,
		"bad child":       `{"purchaseDate":"2025-06-01T10:00:00Z","totalValue":1,"userId":1,"purchaseLocationId":1,"expenses":[{"value":1}],"purchasePaymentMethods":[]}`,
		"three decimals":  `{"purchaseDate":"2025-06-01T10:00:00Z","totalValue":1.005,"userId":1,"purchaseLocationId":1,"expenses":[],"purchasePaymentMethods":[]}`,
	} {
		if rec := env.do(http.MethodPost, "/api/purchases", body, ""); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400 (%s)", name, rec.Code, rec.Body)
		}
	}
}

func TestCreatePurchaseUnknownReference(t *testing.T) {
	env := newTestEnv(t, false)
	env.purchases.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidReference)

	if rec := env.do(http.MethodPost, "/api/purchases", purchaseBody, ""); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdatePurchaseChildListSemantics(t *testing.T) {
	env := newTestEnv(t, false)

	gomock.InOrder(
		env.purchases.EXPECT().
			UpdatePurchase(gomock.Any(), 5, gomock.Any()).
			DoAndReturn(func(_ context.Context, id int, in domain.PurchaseUpdate) (*domain.Purchase, error) {
				if in.ReplaceExpenses || in.ReplacePaymentMethods {
					t.Error("absent keys must keep children")
				}
				if in.Description == nil || *in.Description != "nova" {
					t.Errorf("description = %v", in.Description)
				}
				return &domain.Purchase{ID: id}, nil
			}),
		env.purchases.EXPECT().
			UpdatePurchase(gomock.Any(), 5, gomock.Any()).
			DoAndReturn(func(_ context.Context, id int, in domain.PurchaseUpdate) (*domain.Purchase, error) {
				if !in.ReplaceExpenses || len(in.Expenses) != 0 {
					t.Errorf("expenses: [] must replace with nothing, got %v/%d", in.ReplaceExpenses, len(in.Expenses))
				}
				if in.ReplacePaymentMethods {
					t.Error("payment methods key was absent")
				}
				return &domain.Purchase{ID: id}, nil
			}),
		env.purchases.EXPECT().
			UpdatePurchase(gomock.Any(), 5, gomock.Any()).
			DoAndReturn(func(_ context.Context, id int, in domain.PurchaseUpdate) (*domain.Purchase, error) {
				if !in.ReplacePaymentMethods || len(in.PurchasePaymentMethods) != 1 {
					t.Errorf("allocations not replaced: %+v", in)
				}
				if !in.PurchasePaymentMethods[0].PaidValue.Equal(decimal.NewFromInt(80)) {
					t.Errorf("paidValue = %s", in.PurchasePaymentMethods[0].PaidValue)
				}
				return &domain.Purchase{ID: id}, nil
			}),
	)

	for _, body := range []string{
		`{"description":"nova"}`,
		`{"expenses":[]}`,
		`{"purchasePaymentMethods":[{"paidValue":80,"paymentMethodId":2}]}`,
	} {
		if rec := env.do(http.MethodPut, "/api/purchases/5", body, ""); rec.Code != http.StatusOK {
			t.Errorf("PUT %s = %d, body %s", body, rec.Code, rec.Body)
		}
	}
	if n := len(env.events.Events()); n != 3 {
		t.Errorf("events = %d, want 3", n)
	}
}

func TestAuthGuard(t *testing.T) {
	env := newTestEnv(t, true)

	hash, err := env.hasher.Hash("SenhaSegura123")
	if err != nil {
		t.Fatal(err)
	}
	env.users.EXPECT().
		FindUserByEmail(gomock.Any(), "joao.silva@example.com").
		Return(&domain.User{ID: 1, Email: "joao.silva@example.com", PasswordHash: hash}, nil).
		Times(2)
	env.purchases.EXPECT().ListPurchases(gomock.Any()).Return([]domain.Purchase{}, nil)

	if rec := env.do(http.MethodGet, "/api/purchases", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: %d, want 401", rec.Code)
	}

	rec := env.do(http.MethodPost, "/api/auth/login", `{"email":"joao.silva@example.com","password":"wrong"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad password: %d, want 401", rec.Code)
	}

	rec = env.do(http.MethodPost, "/api/auth/login", `{"email":"joao.silva@example.com","password":"SenhaSegura123"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: %d %s", rec.Code, rec.Body)
	}
	token, _ := decode(t, rec)["token"].(string)
	if token == "" {
		t.Fatal("empty token")
	}

	rec = env.do(http.MethodGet, "/api/purchases", "", token)
	if rec.Code != http.StatusOK {
		t.Errorf("with token: %d", rec.Code)
	}
	var list []domain.Purchase
	if err := json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&list); err != nil || len(list) != 0 {
		t.Errorf("list = %v, %v", list, err)
	}
}

func TestRegistrationOpenWithAuthEnabled(t *testing.T) {
	env := newTestEnv(t, true)
	env.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 3}, nil)

	rec := env.do(http.MethodPost, "/api/users", `{"name":"Maria","email":"maria@example.com","password":"p"}`, "")
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}
