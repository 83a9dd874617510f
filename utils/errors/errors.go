package errors

import "github.com/abmshq/abms-backend/constant"

// CustomError is the explicit failure value every service operation
// returns instead of raising exceptions for control flow. Msg overrides
// the taxonomy message when a validation detail is worth surfacing.
type CustomError struct {
	errType constant.ErrorType
	msg     string
}

func (c CustomError) Error() string {
	if c.msg != "" {
		return c.msg
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorMsg attaches a human-readable detail, used for
// validation failures where the field message matters to the caller.
func SetCustomErrorMsg(errorType constant.ErrorType, msg string) CustomError {
	return CustomError{
		errType: errorType,
		msg:     msg,
	}
}
