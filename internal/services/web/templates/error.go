package templates

import "net/http"

const (
	errorTitleKey    = "errors.title"
	errorNotFoundKey = "errors.not_found"
	errorBadReqKey   = "errors.bad_request"
	errorInternalKey = "errors.internal"
	errorBackKey     = "errors.back"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(loc Localizer) string {
	return T(loc, errorTitleKey)
}

// ErrorMessageKey returns the default message key for statusCode.
func ErrorMessageKey(statusCode int) string {
	switch {
	case statusCode == http.StatusNotFound:
		return errorNotFoundKey
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		return errorBadReqKey
	default:
		return errorInternalKey
	}
}

func errorMessage(statusCode int, message string, loc Localizer) string {
	if message != "" {
		return message
	}
	return T(loc, ErrorMessageKey(statusCode))
}
