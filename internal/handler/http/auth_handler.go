package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PaulBilal/Edunova-School-System/internal/domain/entity"
	"github.com/PaulBilal/Edunova-School-System/internal/handler/http/dto"
	"github.com/PaulBilal/Edunova-School-System/internal/handler/http/middleware"
	"github.com/PaulBilal/Edunova-School-System/internal/infrastructure/metrics"
	usecasecontract "github.com/PaulBilal/Edunova-School-System/internal/usecase/contract"
)

// AuthHandlerInterface lists the auth endpoints so tests can swap the handler.
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	GetProfile(*gin.Context)
	VerifyEmail(*gin.Context)
	ResendVerification(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUC         usecasecontract.IAuthUseCase
	verificationUC usecasecontract.IEmailVerificationUC
	logger         usecasecontract.IAppLogger
	metrics        *metrics.Metrics
}

// NewAuthHandler wires the auth use cases. m may be nil.
func NewAuthHandler(authUC usecasecontract.IAuthUseCase, verificationUC usecasecontract.IEmailVerificationUC, logger usecasecontract.IAppLogger, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		authUC:         authUC,
		verificationUC: verificationUC,
		logger:         logger,
		metrics:        m,
	}
}

func (h *AuthHandler) observe(operation string, err error) {
	if h.metrics != nil {
		h.metrics.ObserveAuth(operation, err)
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}

	result, err := h.authUC.Register(c.Request.Context(), req.ToInput())
	h.observe("register", err)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToRegisterResponse(*result.User, result.Token))
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	h.observe("login", err)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToLoginResponse(*result.User, result.Token))
}

// GetProfile returns the authenticated user's profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	value, exists := c.Get(middleware.ContextUserKey)
	user, ok := value.(*entity.User)
	if !exists || !ok || user.ID == "" {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	profile, err := h.authUC.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToProfileResponse(*profile))
}

// VerifyEmail handles POST /verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}

	result, err := h.verificationUC.VerifyEmail(c.Request.Context(), req.Token, req.Code)
	h.observe("verify_email", err)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToVerifyEmailResponse(*result.User, result.Token))
}

// ResendVerification handles POST /resend-verification
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if err := BindJSON(c, &req); err != nil {
		return
	}

	err := h.verificationUC.ResendVerification(c.Request.Context(), req.Token)
	h.observe("resend_verification", err)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ResendVerificationResponse{Success: true, Message: "Verification code resent"})
}
