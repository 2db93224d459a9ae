package loans

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ekuzmichev/sheetbet/internal/domain"
	"github.com/ekuzmichev/sheetbet/internal/dto"
	"github.com/ekuzmichev/sheetbet/internal/service/loanservice"
	"github.com/ekuzmichev/sheetbet/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*LoanHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authCtx() context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, "842712345")
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	loan := &domain.Loan{
		LoanID:       "LN-20250315103000",
		UserID:       "842712345",
		Amount:       1000,
		InterestRate: 0.10,
		DueDate:      "2025-03-22",
		RepayAmount:  1100,
		Status:       domain.LoanActive,
		Timestamp:    "2025-03-15 10:30:00",
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.LoanIssueResponseDTO
	}{
		{
			name: "Successful issue",
			body: `{"amount":1000}`,
			prepareMock: func() {
				service.EXPECT().
					Create(authCtx(), "842712345", 1000).
					Return(loan, 2250, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.LoanIssueResponseDTO{
				Loan: dto.LoanDTO{
					LoanID:       "LN-20250315103000",
					Amount:       1000,
					InterestRate: 0.10,
					RepayAmount:  1100,
					DueDate:      "2025-03-22",
					Status:       "Active",
					Timestamp:    "2025-03-15 10:30:00",
				},
				NewBalance: 2250,
			},
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Invalid amount",
			body: `{"amount":-5}`,
			prepareMock: func() {
				service.EXPECT().
					Create(authCtx(), "842712345", -5).
					Return(nil, 0, loanservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: loanservice.ErrInvalidAmount.Error(),
		},
		{
			name: "Active loan exists",
			body: `{"amount":1000}`,
			prepareMock: func() {
				service.EXPECT().
					Create(authCtx(), "842712345", 1000).
					Return(nil, 0, loanservice.ErrActiveLoanExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: loanservice.ErrActiveLoanExists.Error(),
		},
		{
			name: "Not registered",
			body: `{"amount":1000}`,
			prepareMock: func() {
				service.EXPECT().
					Create(authCtx(), "842712345", 1000).
					Return(nil, 0, loanservice.ErrNotRegistered)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not registered",
		},
		{
			name: "Internal server error",
			body: `{"amount":1000}`,
			prepareMock: func() {
				service.EXPECT().
					Create(authCtx(), "842712345", 1000).
					Return(nil, 0, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/user/loans", bytes.NewBufferString(tt.body))
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.Create(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.LoanIssueResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestRepayHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful repayment",
			prepareMock: func() {
				service.EXPECT().
					Repay(authCtx(), "842712345").
					Return(&domain.Loan{
						LoanID:      "LN-20250315103000",
						Amount:      1000,
						RepayAmount: 1100,
						Status:      domain.LoanPaid,
					}, 400, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No active loan",
			prepareMock: func() {
				service.EXPECT().
					Repay(authCtx(), "842712345").
					Return(nil, 0, loanservice.ErrNoActiveLoan)
			},
			expectedCode:  http.StatusConflict,
			expectedError: loanservice.ErrNoActiveLoan.Error(),
		},
		{
			name: "Insufficient balance",
			prepareMock: func() {
				service.EXPECT().
					Repay(authCtx(), "842712345").
					Return(nil, 0, loanservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: loanservice.ErrInsufficientBalance.Error(),
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					Repay(authCtx(), "842712345").
					Return(nil, 0, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/user/loans/repay", nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.Repay(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.LoanRepayResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "Paid", body.Loan.Status)
				assert.Equal(t, 400, body.NewBalance)
			}
		})
	}
}

func TestHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		checkBody    func(t *testing.T, body dto.LoanHistoryResponseDTO)
	}{
		{
			name:   "History with active loan",
			target: "/api/user/loans",
			prepareMock: func() {
				active := &domain.Loan{LoanID: "LN-2", Status: domain.LoanActive}
				service.EXPECT().
					History(authCtx(), "842712345", 5).
					Return(active, []domain.Loan{
						{LoanID: "LN-1", Status: domain.LoanPaid},
						{LoanID: "LN-2", Status: domain.LoanActive},
					}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body dto.LoanHistoryResponseDTO) {
				assert.NotNil(t, body.Active)
				assert.Equal(t, "LN-2", body.Active.LoanID)
				assert.Len(t, body.Recent, 2)
			},
		},
		{
			name:   "Custom limit",
			target: "/api/user/loans?limit=2",
			prepareMock: func() {
				service.EXPECT().
					History(authCtx(), "842712345", 2).
					Return(nil, []domain.Loan{}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body dto.LoanHistoryResponseDTO) {
				assert.Nil(t, body.Active)
				assert.Empty(t, body.Recent)
			},
		},
		{
			name:   "Bad limit falls back to default",
			target: "/api/user/loans?limit=abc",
			prepareMock: func() {
				service.EXPECT().
					History(authCtx(), "842712345", 5).
					Return(nil, []domain.Loan{}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody:    func(t *testing.T, body dto.LoanHistoryResponseDTO) {},
		},
		{
			name:   "Internal server error",
			target: "/api/user/loans",
			prepareMock: func() {
				service.EXPECT().
					History(authCtx(), "842712345", 5).
					Return(nil, nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
			checkBody:    func(t *testing.T, body dto.LoanHistoryResponseDTO) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			r = r.WithContext(authCtx())
			w := httptest.NewRecorder()

			handler.History(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.LoanHistoryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				tt.checkBody(t, body)
			}
		})
	}
}
