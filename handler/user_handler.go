package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"zenith-bank/common"
	"zenith-bank/model"
	"zenith-bank/service"
)

type UserHandler struct {
	userService  *service.UserService
	authService  *service.AuthService
	loginLimiter *service.LoginLimiter
}

func NewUserHandler(userService *service.UserService, authService *service.AuthService, loginLimiter *service.LoginLimiter) *UserHandler {
	return &UserHandler{
		userService:  userService,
		authService:  authService,
		loginLimiter: loginLimiter,
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user together with an opening account holding the configured starting balance.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body model.RegisterRequest true "Registration details"
// @Success      201  {object}  model.User
// @Failure      400  {object}  common.AppError "Missing field, weak password"
// @Failure      409  {object}  common.AppError "Username or email already taken"
// @Router       /register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	user, err := h.userService.Register(req)
	if err != nil {
		switch err {
		case service.ErrUsernameTaken, service.ErrEmailTaken:
			return common.NewAppError(http.StatusConflict, err.Error(), nil)
		case service.ErrWeakPassword:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not create user", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
	return nil
}

// Login godoc
// @Summary      Authenticate a user
// @Description  Verifies the credentials and issues an access/refresh token pair. Failed attempts are rate limited per client address.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Login credentials"
// @Success      200  {object}  service.TokenPair
// @Failure      401  {object}  common.AppError "Invalid username or password"
// @Failure      429  {object}  common.AppError "Too many attempts"
// @Router       /login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	clientAddr := remoteHost(r)
	if !h.loginLimiter.Allow(clientAddr) {
		return common.NewAppError(http.StatusTooManyRequests, "Too many attempts. Try again in a minute.", nil)
	}

	tokens, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		switch err {
		case service.ErrUserNotFound, service.ErrBadPassword:
			h.loginLimiter.RecordFailure(clientAddr)
			return common.NewAppError(http.StatusUnauthorized, "Invalid username or password", nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process login", err)
		}
	}

	h.loginLimiter.Reset(clientAddr)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(tokens)
	return nil
}

// Refresh godoc
// @Summary      Refresh an access token
// @Description  Exchanges a valid refresh token for a new access token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        token body model.RefreshRequest true "Refresh token"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  common.AppError "Invalid or expired refresh token"
// @Router       /api/token/refresh [post]
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	accessToken, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		if err == service.ErrInvalidRefreshToken {
			return common.NewAppError(http.StatusUnauthorized, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not refresh token", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"access_token": accessToken})
	return nil
}

// Logout godoc
// @Summary      Log out
// @Description  Invalidates every refresh token the authenticated user holds.
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  common.AppError "Unauthorized"
// @Router       /api/logout [post]
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	if err := h.authService.Logout(userID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not process logout", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
