package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bakery/api"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(token string) (kernel.Actor, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.Actor), args.Error(1)
}

type recordedRequest struct {
	method, path string
	status       int
}

type fakeRequestRecorder struct {
	requests []recordedRequest
}

func (f *fakeRequestRecorder) RequestStarted() func(method, path string, status int) {
	return func(method, path string, status int) {
		f.requests = append(f.requests, recordedRequest{method, path, status})
	}
}

func customer(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)
	return actor
}

// serve runs the request through mw and a handler that echoes the resolved actor.
func serve(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, *kernel.Actor, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var seen *kernel.Actor
	err := mw(func(c echo.Context) error {
		if actor, err := requireActor(c); err == nil {
			seen = &actor
		}
		return c.NoContent(http.StatusNoContent)
	})(ctx)
	return rec, seen, err
}

func TestAuthenticate(t *testing.T) {
	t.Run("anonymous without header", func(t *testing.T) {
		verifier := new(mockVerifier)

		rec, seen, err := serve(Authenticate(verifier), httptest.NewRequest(http.MethodGet, "/api/products", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Nil(t, seen)
		verifier.AssertNotCalled(t, "Verify", mock.Anything)
	})

	t.Run("bearer token resolves the actor", func(t *testing.T) {
		actor := customer(t)
		verifier := new(mockVerifier)
		verifier.On("Verify", "abc.def.ghi").Return(actor, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders/my", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer abc.def.ghi")
		_, seen, err := serve(Authenticate(verifier), req)

		require.NoError(t, err)
		require.NotNil(t, seen)
		assert.True(t, actor.ID().IsEqual(seen.ID()))
		verifier.AssertExpectations(t)
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders/my", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")

		_, _, err := serve(Authenticate(new(mockVerifier)), req)

		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("rejected token", func(t *testing.T) {
		verifier := new(mockVerifier)
		verifier.On("Verify", "forged").Return(kernel.Actor{}, auth.ErrInvalidToken).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/orders/my", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer forged")
		_, seen, err := serve(Authenticate(verifier), req)

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Nil(t, seen)
	})
}

func TestRequireActor(t *testing.T) {
	ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := requireActor(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestMetrics(t *testing.T) {
	recorder := &fakeRequestRecorder{}
	e := echo.New()
	e.Use(Metrics(recorder))
	e.GET("/api/orders/:id", func(c echo.Context) error {
		return errors.New("boom")
	})
	e.GET("/api/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, target := range []string{"/api/health", "/api/orders/123", "/nowhere"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	require.Len(t, recorder.requests, 3)
	assert.Equal(t, recordedRequest{http.MethodGet, "/api/health", http.StatusOK}, recorder.requests[0])
	assert.Equal(t, recordedRequest{http.MethodGet, "/api/orders/:id", http.StatusInternalServerError}, recorder.requests[1])
	assert.Equal(t, http.StatusNotFound, recorder.requests[2].status)
}

func TestValidateRequests(t *testing.T) {
	doc, err := api.Load(t.Context())
	require.NoError(t, err)

	validator, err := ValidateRequests(doc)
	require.NoError(t, err)

	t.Run("well-formed order passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders",
			strings.NewReader(`{"items":[{"product":"x","quantity":2}],"paymentMethod":"COD"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec, _, err := serve(validator, req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("wrong type is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders",
			strings.NewReader(`{"items":[{"product":"x","quantity":"two"}]}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		_, _, err := serve(validator, req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, StatusFor(err))
	})

	t.Run("bad query parameter is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products?featured=maybe", nil)

		_, _, err := serve(validator, req)
		assert.Equal(t, http.StatusBadRequest, StatusFor(err))
	})

	t.Run("undocumented route passes through", func(t *testing.T) {
		rec, _, err := serve(validator, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
