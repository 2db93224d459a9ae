package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/dto"
	"github.com/ekuzmichev/sheetbet/internal/service/adminservice"
	"github.com/ekuzmichev/sheetbet/internal/service/rewardservice"
	"github.com/ekuzmichev/sheetbet/internal/service/userservice"
	"github.com/ekuzmichev/sheetbet/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService, *MockMilestoneService, *MockUserService) {
	ctrl := gomock.NewController(t)
	adminService := NewMockService(ctrl)
	milestoneService := NewMockMilestoneService(ctrl)
	userService := NewMockUserService(ctrl)
	handler := New(adminService, milestoneService, userService)
	defer ctrl.Finish()
	return handler, adminService, milestoneService, userService
}

func authCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, "999000111")
}

func TestRequireAdminMiddleware(t *testing.T) {
	handler, adminService, _, _ := NewMock(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		ctx          context.Context
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Admin passes through",
			ctx:  authCtx(),
			prepareMock: func() {
				adminService.EXPECT().IsAdmin(authCtx(), "999000111").Return(true)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Non-admin is forbidden",
			ctx:  authCtx(),
			prepareMock: func() {
				adminService.EXPECT().IsAdmin(authCtx(), "999000111").Return(false)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Missing identity is forbidden",
			ctx:          context.Background(),
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/admin/milestones", nil)
			r = r.WithContext(tt.ctx)
			w := httptest.NewRecorder()

			handler.RequireAdmin(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusForbidden {
				assert.Contains(t, w.Body.String(), "Forbidden")
			}
		})
	}
}

func TestMakeAdminHandler(t *testing.T) {
	handler, adminService, _, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful promotion",
			body: `{"target":"@alice"}`,
			prepareMock: func() {
				adminService.EXPECT().
					MakeAdmin(authCtx(), "@alice").
					Return(&domain.User{ID: "842712345", Username: "alice"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown target",
			body: `{"target":"@nobody"}`,
			prepareMock: func() {
				adminService.EXPECT().
					MakeAdmin(authCtx(), "@nobody").
					Return(nil, userservice.ErrNotRegistered)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not registered",
		},
		{
			name:          "Invalid request body",
			body:          `{"target":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/admin/admins", bytes.NewBufferString(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.MakeAdmin(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.AdminResetResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "842712345", body.UserID)
				assert.Equal(t, "alice", body.Username)
			}
		})
	}
}

func TestSetBalanceHandler(t *testing.T) {
	handler, adminService, _, _ := NewMock(t)

	adminService.EXPECT().
		ResetBalance(authCtx(), "@alice", 5000).
		Return(&domain.User{ID: "842712345", Username: "alice", Balance: 5000}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/admin/users/balance", bytes.NewBufferString(`{"target":"@alice","amount":5000}`))
	r = r.WithContext(authCtx())
	w := httptest.NewRecorder()

	handler.SetBalance(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.AdminResetResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, 5000, body.NewBalance)
}

func TestSetXPHandler(t *testing.T) {
	handler, adminService, _, _ := NewMock(t)

	adminService.EXPECT().
		SetXP(authCtx(), "@alice", 2600).
		Return(&domain.User{ID: "842712345", Username: "alice"}, 2600, 3, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/admin/users/xp", bytes.NewBufferString(`{"target":"@alice","amount":2600}`))
	r = r.WithContext(authCtx())
	w := httptest.NewRecorder()

	handler.SetXP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, "842712345", body["user_id"])
	assert.Equal(t, float64(2600), body["xp"])
	assert.Equal(t, float64(3), body["level"])
}

func TestGainXPHandler(t *testing.T) {
	handler, _, _, userService := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful grant",
			body: `{"target":"@alice","amount":250}`,
			prepareMock: func() {
				userService.EXPECT().Resolve(authCtx(), "@alice").Return("842712345", nil)
				userService.EXPECT().GainXP(authCtx(), "842712345", 250).Return(1250, 2, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown target",
			body: `{"target":"@nobody","amount":250}`,
			prepareMock: func() {
				userService.EXPECT().Resolve(authCtx(), "@nobody").Return("", userservice.ErrNotRegistered)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/admin/xp/gain", bytes.NewBufferString(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.GainXP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body map[string]any
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "842712345", body["user_id"])
				assert.Equal(t, float64(1250), body["xp"])
				assert.Equal(t, float64(2), body["level"])
			}
		})
	}
}

func TestResetAllHandler(t *testing.T) {
	handler, adminService, _, _ := NewMock(t)

	adminService.EXPECT().
		ResetAll(authCtx(), "@alice").
		Return(&adminservice.FullReset{
			User:         &domain.User{ID: "842712345", Username: "alice"},
			NewBalance:   1000,
			LoansCleared: 2,
			LogsDetached: 17,
		}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/admin/users/reset", bytes.NewBufferString(`{"target":"@alice"}`))
	r = r.WithContext(authCtx())
	w := httptest.NewRecorder()

	handler.ResetAll(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.AdminResetResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, 1000, body.NewBalance)
	assert.Equal(t, 2, body.LoansCleared)
	assert.Equal(t, 17, body.LogsDetached)
}

func milestoneRequest(method, target, threshold, body string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("threshold", threshold)
	ctx := context.WithValue(authCtx(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestMilestoneHandlers(t *testing.T) {
	handler, _, milestoneService, _ := NewMock(t)

	t.Run("List", func(t *testing.T) {
		milestoneService.EXPECT().Table(gomock.Any()).Return([]domain.Milestone{
			{Threshold: 10000, Reward: 1000, XP: 100, Active: true},
		}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/admin/milestones", nil)
		r = r.WithContext(authCtx())
		w := httptest.NewRecorder()

		handler.ListMilestones(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.MilestoneDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 1)
		assert.Equal(t, 10000, body[0].Threshold)
	})

	t.Run("Add", func(t *testing.T) {
		milestoneService.EXPECT().
			AddMilestone(gomock.Any(), domain.Milestone{Threshold: 5000, Reward: 400, XP: 40, Description: "5K starter"}).
			Return(nil)

		r := httptest.NewRequest(http.MethodPost, "/api/admin/milestones", bytes.NewBufferString(`{"threshold":5000,"reward":400,"xp":40,"description":"5K starter"}`))
		r = r.WithContext(authCtx())
		w := httptest.NewRecorder()

		handler.AddMilestone(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Add duplicate", func(t *testing.T) {
		milestoneService.EXPECT().
			AddMilestone(gomock.Any(), gomock.Any()).
			Return(rewardservice.ErrMilestoneExists)

		r := httptest.NewRequest(http.MethodPost, "/api/admin/milestones", bytes.NewBufferString(`{"threshold":10000,"reward":400}`))
		r = r.WithContext(authCtx())
		w := httptest.NewRecorder()

		handler.AddMilestone(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Edit", func(t *testing.T) {
		milestoneService.EXPECT().
			EditMilestone(gomock.Any(), 5000, "reward", "450").
			Return(&domain.Milestone{Threshold: 5000, Reward: 450, XP: 40, Active: true}, nil)

		r := milestoneRequest(http.MethodPatch, "/api/admin/milestones/5000", "5000", `{"field":"reward","value":"450"}`)
		w := httptest.NewRecorder()

		handler.EditMilestone(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.MilestoneDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, 450, body.Reward)
	})

	t.Run("Edit unknown field", func(t *testing.T) {
		milestoneService.EXPECT().
			EditMilestone(gomock.Any(), 5000, "color", "red").
			Return(nil, rewardservice.ErrInvalidField)

		r := milestoneRequest(http.MethodPatch, "/api/admin/milestones/5000", "5000", `{"field":"color","value":"red"}`)
		w := httptest.NewRecorder()

		handler.EditMilestone(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Bad threshold param", func(t *testing.T) {
		r := milestoneRequest(http.MethodPatch, "/api/admin/milestones/abc", "abc", `{"field":"reward","value":"450"}`)
		w := httptest.NewRecorder()

		handler.EditMilestone(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid threshold")
	})

	t.Run("Toggle", func(t *testing.T) {
		milestoneService.EXPECT().ToggleMilestone(gomock.Any(), 5000).Return(false, nil)

		r := milestoneRequest(http.MethodPost, "/api/admin/milestones/5000/toggle", "5000", "")
		w := httptest.NewRecorder()

		handler.ToggleMilestone(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.MilestoneToggleResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, 5000, body.Threshold)
		assert.False(t, body.Active)
	})

	t.Run("Delete unknown", func(t *testing.T) {
		milestoneService.EXPECT().DeleteMilestone(gomock.Any(), 777).Return(rewardservice.ErrMilestoneNotFound)

		r := milestoneRequest(http.MethodDelete, "/api/admin/milestones/777", "777", "")
		w := httptest.NewRecorder()

		handler.DeleteMilestone(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Reset defaults", func(t *testing.T) {
		milestoneService.EXPECT().ResetDefaults(gomock.Any()).Return(nil)

		r := httptest.NewRequest(http.MethodPost, "/api/admin/milestones/reset", nil)
		r = r.WithContext(authCtx())
		w := httptest.NewRecorder()

		handler.ResetMilestones(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUnknownAdminErrorIsInternal(t *testing.T) {
	handler, adminService, _, _ := NewMock(t)

	adminService.EXPECT().
		ResetXP(authCtx(), "@alice").
		Return(nil, errors.New("error"))

	r := httptest.NewRequest(http.MethodPost, "/api/admin/users/xp/reset", bytes.NewBufferString(`{"target":"@alice"}`))
	r = r.WithContext(authCtx())
	w := httptest.NewRecorder()

	handler.ResetXP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}
