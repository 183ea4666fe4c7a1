package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/storefront/config"
	"github.com/device-management-toolkit/storefront/internal/entity/dto/v1"
	"github.com/device-management-toolkit/storefront/pkg/apperrors"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

var ErrValidationSession = dto.NotValidError{App: apperrors.CreateAppError("SessionAPI")}

type sessionRoutes struct {
	s    SessionFeature
	cart CartFeature
	erp  config.ERP
	l    logger.Interface
}

func NewSessionRoutes(handler *gin.RouterGroup, s SessionFeature, cart CartFeature, erp config.ERP, l logger.Interface) {
	r := &sessionRoutes{s, cart, erp, l}

	h := handler.Group("/session")
	{
		h.POST("", r.login)
		h.GET("", r.get)
		h.DELETE("", r.logout)
	}
}

func (r *sessionRoutes) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, ErrValidationSession.Wrap("login", "ShouldBindJSON", err))

		return
	}

	if req.ServerAddress == "" {
		req.ServerAddress = r.erp.URL
	}

	if req.DatabaseName == "" {
		req.DatabaseName = r.erp.Database
	}

	info, err := r.s.Authenticate(c.Request.Context(), req.ServerAddress, req.DatabaseName, req.Username, req.Password)
	if err != nil && info.UserID == 0 {
		r.l.Error(err, "http - v1 - login")
		ErrorResponse(c, err)

		return
	}

	if err != nil {
		// logged in, but the record will not survive a restart
		r.l.Warn("http - v1 - login: %v", err)
	}

	c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: true, SessionInfo: info})
}

func (r *sessionRoutes) get(c *gin.Context) {
	info, ok := r.s.SessionInfo()

	c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: ok, SessionInfo: info})
}

// logout ends the session and empties the cart.
func (r *sessionRoutes) logout(c *gin.Context) {
	if err := r.s.Logout(c.Request.Context()); err != nil {
		r.l.Error(err, "http - v1 - logout")
		ErrorResponse(c, err)

		return
	}

	if err := r.cart.Clear(); err != nil {
		r.l.Error(err, "http - v1 - logout - cart")
		ErrorResponse(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
