package dto

type LoanRequestDTO struct {
	Amount int `json:"amount" example:"1000"`
}

type LoanDTO struct {
	LoanID       string  `json:"loan_id" example:"LN-20250315103000"`
	Amount       int     `json:"amount" example:"1000"`
	InterestRate float64 `json:"interest_rate" example:"0.1"`
	RepayAmount  int     `json:"repay_amount" example:"1100"`
	DueDate      string  `json:"due_date" example:"2025-03-22"`
	Status       string  `json:"status" example:"Active"`
	Timestamp    string  `json:"timestamp,omitempty" example:"2025-03-15 10:30:00"`
}

type LoanIssueResponseDTO struct {
	Loan       LoanDTO `json:"loan"`
	NewBalance int     `json:"new_balance" example:"2250"`
}

type LoanRepayResponseDTO struct {
	Loan       LoanDTO `json:"loan"`
	NewBalance int     `json:"new_balance" example:"400"`
}

type LoanHistoryResponseDTO struct {
	Active *LoanDTO  `json:"active,omitempty"`
	Recent []LoanDTO `json:"recent"`
}
