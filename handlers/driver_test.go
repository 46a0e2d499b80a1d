package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/supper-app/supper/models"
)

func TestListDrivers(t *testing.T) {
	t.Run("returns drivers", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.drivers.On("ListDrivers").Return([]models.Driver{
			{ID: 1, Name: "Ravi", Status: "available"},
			{ID: 2, Name: "Sam", Status: "busy"},
		}, nil).Once()

		w := doRequest(router, "GET", "/api/drivers", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp []models.Driver
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "Ravi", resp[0].Name)
	})

	t.Run("store failure yields 500", func(t *testing.T) {
		router, s := newTestRouter(t)
		s.drivers.On("ListDrivers").Return(nil, errors.New("db down")).Once()

		w := doRequest(router, "GET", "/api/drivers", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, `{"error":"Failed to fetch drivers"}`+"\n", w.Body.String())
	})
}

func TestCreateDriver(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mockDrivers)
		wantCode  int
		wantBody  string
	}{
		{
			name: "valid request",
			body: `{"name":"Ravi","vehicle":"bike"}`,
			setupMock: func(m *mockDrivers) {
				m.On("CreateDriver", mock.MatchedBy(func(in models.DriverInput) bool {
					return in.Name == "Ravi" && in.Vehicle != nil && *in.Vehicle == "bike"
				})).Return(int64(3), nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing name",
			body:      `{"vehicle":"bike"}`,
			setupMock: func(m *mockDrivers) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"name required"}` + "\n",
		},
		{
			name: "database error",
			body: `{"name":"Ravi"}`,
			setupMock: func(m *mockDrivers) {
				m.On("CreateDriver", mock.Anything).Return(int64(0), errors.New("db down")).Once()
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to add driver"}` + "\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, s := newTestRouter(t)
			tc.setupMock(s.drivers)

			w := doRequest(router, "POST", "/api/drivers", tc.body)

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, w.Body.String())
			}
			s.drivers.AssertExpectations(t)
		})
	}
}
