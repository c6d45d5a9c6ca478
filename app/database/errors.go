package database

import "errors"

// Business-rule rejections surfaced by ledger operations. All are
// caller-correctable; handlers map them to 4xx responses with errors.Is.
var (
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientBudget = errors.New("insufficient project budget")
	ErrSameProject        = errors.New("cannot transfer funds to the same project")
	ErrAccountNotFound    = errors.New("main account not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrAlertNotFound      = errors.New("alert not found")
	ErrUserExists         = errors.New("username or email is already registered")
	ErrProjectExists      = errors.New("a project with this name already exists")
	ErrUserNotFound       = errors.New("user not found")
)
