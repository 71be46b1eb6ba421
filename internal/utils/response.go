package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/clinic-records/internal/models"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Message *string `json:"message"`
}

// Respond writes the envelope. A nil data is sent as an empty object.
func Respond(c *gin.Context, status int, success bool, data any, message *string) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, Envelope{Success: success, Data: data, Message: message})
}

// OK answers a successful read.
func OK(c *gin.Context, data any) {
	Respond(c, http.StatusOK, true, data, nil)
}

// Accepted answers a successful write.
func Accepted(c *gin.Context, data any) {
	Respond(c, http.StatusAccepted, true, data, nil)
}

// Fail converts err into its status code and a localized message. Errors
// outside the known taxonomy are internal and carry their own text.
func Fail(c *gin.Context, err error, data any) {
	status, key := ErrorStatus(err)
	var msg string
	if key == "" {
		msg = err.Error()
	} else {
		msg = Message(MatchLanguage(c.GetHeader("Accept-Language")), key)
	}
	Respond(c, status, false, data, &msg)
}

// ErrorStatus maps err to its HTTP status and message key. An empty key means
// the error is internal.
func ErrorStatus(err error) (int, MessageKey) {
	switch {
	case errors.Is(err, models.ErrInvalidUserType):
		return http.StatusBadRequest, MsgInvalidUserType
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest, MsgMissingFields
	case errors.Is(err, models.ErrUsernameTaken):
		return http.StatusNotAcceptable, MsgUsernameTaken
	case errors.Is(err, models.ErrPhoneTaken):
		return http.StatusNotAcceptable, MsgPhoneTaken
	case errors.Is(err, models.ErrPolicyViolation):
		return http.StatusNotAcceptable, MsgPasswordTooShort
	case errors.Is(err, models.ErrNoUsers):
		return http.StatusNotFound, MsgNoUsers
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, MsgUserNotFound
	case errors.Is(err, models.ErrCreateFailed):
		return http.StatusForbidden, MsgCreateFailed
	case errors.Is(err, models.ErrDeleteFailed):
		return http.StatusBadRequest, MsgDeleteFailed
	case errors.Is(err, models.ErrWriteFailure):
		return http.StatusBadRequest, MsgUpdateFailed
	}
	return http.StatusInternalServerError, ""
}
