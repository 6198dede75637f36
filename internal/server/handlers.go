package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/cloud-ru/rent-vs-buy-go/internal/tools"
	"github.com/cloud-ru/rent-vs-buy-go/internal/validators"
	"github.com/labstack/echo/v4"
)

// ErrorResponse тело ответа при ошибке валидации
type ErrorResponse struct {
	Timestamp string            `json:"timestamp"`
	Status    int               `json:"status"`
	Errors    map[string]string `json:"errors,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// Health сообщает, что сервис жив
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Compare сравнивает аренду и покупку
func (s *Server) Compare(c echo.Context) error {
	params, ok := s.bindParams(c)
	if !ok {
		return badBody(c)
	}

	result, err := s.tools.Call(c.Request().Context(), tools.CompareRentAndBuyTool, params)
	if err != nil {
		return s.toolError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Schedule строит график платежей по кредиту
func (s *Server) Schedule(c echo.Context) error {
	params, ok := s.bindParams(c)
	if !ok {
		return badBody(c)
	}
	if scheduleType := c.QueryParam("type"); scheduleType != "" {
		params["type"] = scheduleType
	}

	result, err := s.tools.Call(c.Request().Context(), tools.LoanScheduleTool, params)
	if err != nil {
		return s.toolError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) bindParams(c echo.Context) (map[string]interface{}, bool) {
	var params map[string]interface{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &params); err != nil {
		s.log.WithError(err).Debug("bind body")
		return nil, false
	}
	if params == nil {
		params = map[string]interface{}{}
	}
	return params, true
}

func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Timestamp: timestamp(),
		Status:    http.StatusBadRequest,
		Error:     "invalid body",
	})
}

func (s *Server) toolError(c echo.Context, err error) error {
	var ve *validators.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Timestamp: timestamp(),
			Status:    http.StatusBadRequest,
			Errors:    ve.Fields,
		})
	case errors.Is(err, tools.ErrInvalidParams):
		return badBody(c)
	}

	s.log.WithError(err).Error("tool call failed")
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
