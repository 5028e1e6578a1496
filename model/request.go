package model

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a previously issued refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TransferRequest defines a web transfer. Source is a composite store key
// ("account_3" or "card_7") and the amount travels as a string so it is never
// coerced through a float.
type TransferRequest struct {
	Source         string `json:"source" validate:"required"`
	TargetUsername string `json:"target_username" validate:"required"`
	Amount         string `json:"amount" validate:"required"`
}

// LoanRequest defines a loan disbursement into one of the borrower's stores.
type LoanRequest struct {
	Target string `json:"target" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

// APITransferRequest defines the bounded machine-to-machine transfer. It only
// ever debits the caller's primary account.
type APITransferRequest struct {
	Amount string `json:"amount" validate:"required"`
}
