package app

import (
	"authsvc/internal/app/deps"
	"authsvc/internal/app/services"
	login "authsvc/internal/http/handlers/auth/log_in"
	me "authsvc/internal/http/handlers/auth/me"
	register "authsvc/internal/http/handlers/auth/register"
	resetpassword "authsvc/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "authsvc/internal/http/handlers/auth/send_password_reset_token"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", register.New(s.Register))
	authRouter.Method(http.MethodPost, "/login", login.New(s.LogIn))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))
	authRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))
	router.Mount("/auth", authRouter)

	return &http.Server{
		Handler:           router,
		Addr:              deps.Config.HTTPAddress,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       5 * time.Second,
	}
}
