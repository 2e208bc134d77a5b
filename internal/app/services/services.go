package services

import (
	"authsvc/internal/app/deps"
	"authsvc/internal/core/services"
	getuserbysessiontoken "authsvc/internal/core/services/get_user_by_session_token"
	login "authsvc/internal/core/services/log_in"
	register "authsvc/internal/core/services/register"
	resetpassword "authsvc/internal/core/services/reset_password"
	sendpasswordresettoken "authsvc/internal/core/services/send_password_reset_token"
)

type Services struct {
	Register               services.Service[register.Input, register.Result]
	LogIn                  services.Service[login.Input, login.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
	GetUserBySessionToken  services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.Register = register.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogIn = login.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.SessionTokenIssuer,
	)
	s.SendPasswordResetToken = sendpasswordresettoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.ResetTokenGenerator,
		deps.ResetTokenSender,
		deps.Config.PasswordResetValidDuration,
		deps.Now,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Now,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.SessionTokenIssuer,
	)

	return s
}
