package me

import (
	e "authsvc/internal/core/domain/errors"
	"authsvc/internal/core/domain/user"
	"authsvc/internal/core/services"
	service "authsvc/internal/core/services/get_user_by_session_token"
	"authsvc/internal/http/handlers/auth"
	"authsvc/internal/http/handlers/response"
	"errors"
	"net/http"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Token: token})
	if errors.Is(err, user.ErrInvalidSessionToken) || errors.Is(err, user.ErrSessionTokenExpired) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, response.NewUserResponse(result.User), http.StatusOK)
}
