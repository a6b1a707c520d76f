package restapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ton_portfolio/internal/app/port"
	"ton_portfolio/internal/domain/entity"
)

// APIViewResponse wraps the page state returned by the view endpoints.
type APIViewResponse struct {
	Data          entity.ViewState `json:"data"`
	StatusMessage string           `json:"status_message,omitempty"`
}

// APIErrorResponse is returned for rejected requests.
type APIErrorResponse struct {
	Error string `json:"error"`
}

// WalletActionRequest carries the account returned by the wallet on connect.
type WalletActionRequest struct {
	Address string `json:"address" form:"address" binding:"omitempty,max=128"`
}

// SessionHandler handles the wallet page HTTP requests.
type SessionHandler struct {
	session port.SessionService
	chart   port.ChartService
	logger  port.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(session port.SessionService, chart port.ChartService, logger port.Logger) *SessionHandler {
	return &SessionHandler{session: session, chart: chart, logger: logger}
}

// PageHandler renders the HTML wallet page.
func (h *SessionHandler) PageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "page", gin.H{"View": h.session.View()})
}

// GetViewHandler returns the current page state.
func (h *SessionHandler) GetViewHandler(c *gin.Context) {
	c.JSON(http.StatusOK, APIViewResponse{Data: h.session.View()})
}

// WalletActionHandler connects or disconnects the wallet.
func (h *SessionHandler) WalletActionHandler(c *gin.Context) {
	var req WalletActionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, APIErrorResponse{Error: err.Error()})
			return
		}
	}

	if err := h.session.WalletAction(c.Request.Context(), req.Address); err != nil {
		h.logger.Warn("Wallet action failed", "error", err)
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: err.Error()})
		return
	}
	h.respond(c, "Wallet action completed.")
}

// SelectTokenHandler loads the price history of a displayed token.
func (h *SessionHandler) SelectTokenHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "token index must be an integer"})
		return
	}

	if err := h.session.SelectToken(c.Request.Context(), index); err != nil {
		if errors.Is(err, port.ErrTokenNotFound) {
			c.JSON(http.StatusNotFound, APIErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, APIErrorResponse{Error: err.Error()})
		return
	}
	h.respond(c, "Token selected.")
}

// CopyAddressHandler copies the wallet address to the clipboard.
func (h *SessionHandler) CopyAddressHandler(c *gin.Context) {
	n, err := h.session.CopyAddress()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, port.ErrNotConnected) {
			status = http.StatusConflict
		}
		c.JSON(status, APIErrorResponse{Error: err.Error()})
		return
	}
	h.respond(c, n.Message)
}

// ChartHandler returns the price chart series for a contract.
func (h *SessionHandler) ChartHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.chart.Chart(c.Query("contract"))})
}

// HealthHandler reports liveness.
func (h *SessionHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respond redirects HTML form posts back to the page and answers API calls with the view.
func (h *SessionHandler) respond(c *gin.Context, message string) {
	if c.ContentType() == gin.MIMEPOSTForm {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.JSON(http.StatusOK, APIViewResponse{Data: h.session.View(), StatusMessage: message})
}
