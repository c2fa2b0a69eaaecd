package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same business error code,
// so errors.Is keeps working after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Registry-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusForbidden,
		"UNAUTHORIZED",
		"呼叫者沒有執行此操作的權限",
		"",
	)

	ErrNameAlreadyTaken = NewBaseError(
		http.StatusConflict,
		"NAME_ALREADY_TAKEN",
		"此名稱已被註冊",
		"",
	)

	ErrRegistrationPaused = NewBaseError(
		http.StatusConflict,
		"REGISTRATION_PAUSED",
		"目前暫停註冊",
		"",
	)

	ErrFactoryNotInitialized = NewBaseError(
		http.StatusNotFound,
		"FACTORY_NOT_INITIALIZED",
		"註冊工廠尚未初始化",
		"",
	)

	ErrFactoryAlreadyInitialized = NewBaseError(
		http.StatusConflict,
		"FACTORY_ALREADY_INITIALIZED",
		"註冊工廠已經初始化",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"找不到該個人檔案",
		"",
	)

	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_EXISTS",
		"此地址已註冊個人檔案",
		"",
	)

	// Product-related errors
	ErrProductAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PRODUCT_ALREADY_EXISTS",
		"此商品編號已存在",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"找不到該商品",
		"",
	)

	ErrProductLimitReached = NewBaseError(
		http.StatusConflict,
		"PRODUCT_LIMIT_REACHED",
		"已達商品數量上限",
		"",
	)

	// Funds-related errors
	ErrInsufficientBalance = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_BALANCE",
		"金庫餘額不足",
		"",
	)

	ErrInsufficientFunds = NewBaseError(
		http.StatusPaymentRequired,
		"INSUFFICIENT_FUNDS",
		"帳戶餘額不足以支付註冊費",
		"",
	)

	ErrNoFeesToWithdraw = NewBaseError(
		http.StatusConflict,
		"NO_FEES_TO_WITHDRAW",
		"沒有可提領的費用",
		"",
	)

	ErrArithmeticOverflow = NewBaseError(
		http.StatusUnprocessableEntity,
		"ARITHMETIC_OVERFLOW",
		"金額運算溢位",
		"",
	)

	ErrAmountOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"AMOUNT_OUT_OF_RANGE",
		"金額超出允許範圍",
		"",
	)

	ErrFaucetDisabled = NewBaseError(
		http.StatusForbidden,
		"FAUCET_DISABLED",
		"水龍頭功能未啟用",
		"",
	)

	// Authentication-related errors
	ErrInvalidSignature = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SIGNATURE",
		"簽章驗證失敗",
		"",
	)

	ErrChallengeNotFound = NewBaseError(
		http.StatusUnauthorized,
		"CHALLENGE_NOT_FOUND",
		"找不到登入挑戰或已過期",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"無效或已過期的存取權杖",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
