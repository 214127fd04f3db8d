package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
)

type MessageHandler struct {
	messages ports.MessageService
}

func NewMessageHandler(messages ports.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type messageListResponse struct {
	Messages []domain.Message `json:"messages"`
	Count    int              `json:"count"`
}

// List handles GET /messages, optionally scoped to one enquiry thread.
//
// @Summary      List enquiry-thread messages
// @Tags         messages
// @Produce      json
// @Param        enquiry  query  int  false  "Enquiry ID to scope the thread"
// @Success      200  {object}  messageListResponse
// @Failure      401  {object}  map[string]string
// @Router       /messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	var enquiryID int64
	if q := c.QueryParam("enquiry"); q != "" {
		id, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "enquiry must be numeric")
		}
		enquiryID = id
	}

	messages, err := h.messages.ListMessages(c.Request().Context(), ctxSession(c), enquiryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageListResponse{Messages: messages, Count: len(messages)})
}
