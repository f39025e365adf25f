package handler

import (
	"errors"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sideshiftai/basepulse-ido/state"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	TxID    string      `json:"txId,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func TxResponse(c *gin.Context, message, txID string, events []state.Event) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		TxID:    txID,
		Data:    gin.H{"events": events},
	})
}

// errHandled signals that a handler helper already wrote the response.
var errHandled = errors.New("response already written")

func respondUnlessHandled(c *gin.Context, err error) {
	if errors.Is(err, errHandled) {
		return
	}
	ErrorResponse(c, err)
}

func ErrorResponse(c *gin.Context, err error) {
	var custom *state.CustomError
	if errors.As(err, &custom) {
		c.JSON(custom.Code, Response{Success: false, Message: custom.Message})
		return
	}
	c.JSON(http.StatusBadRequest, Response{Success: false, Message: err.Error()})
}

// sender reads the caller identity from the X-Sender header.
func sender(c *gin.Context) (string, bool) {
	s := c.GetHeader("X-Sender")
	if s == "" {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "missing X-Sender header"})
		return "", false
	}
	return s, true
}

// gasPrice reads the optional X-Gas-Price header as a decimal wei amount.
func gasPrice(c *gin.Context) (*big.Int, bool) {
	raw := c.GetHeader("X-Gas-Price")
	if raw == "" {
		return nil, true
	}
	price, ok := new(big.Int).SetString(raw, 10)
	if !ok || price.Sign() < 0 {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "invalid X-Gas-Price header"})
		return nil, false
	}
	return price, true
}
