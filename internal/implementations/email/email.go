package email

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"authsvc/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type ResetTokenSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                string
	passwordResetTemplate string
	passwordResetBaseUrl  url.URL
}

func NewResetTokenSender(
	awsConfig aws.Config,
	sender string,
	passwordResetTemplate string,
	passwordResetBaseUrl url.URL,
) *ResetTokenSender {
	return &ResetTokenSender{
		ses:                   ses.NewFromConfig(awsConfig),
		sender:                sender,
		passwordResetTemplate: passwordResetTemplate,
		passwordResetBaseUrl:  passwordResetBaseUrl,
	}
}

// SendResetToken delivers the reset link out of band. The link addresses
// the record by ID and carries the token: <base>/<userID>/<token>.
func (s *ResetTokenSender) SendResetToken(
	ctx context.Context,
	u user.User,
	token user.ResetToken,
) error {
	resetUrl := s.passwordResetBaseUrl.JoinPath(
		strconv.FormatInt(int64(u.ID), 10),
		string(token),
	)
	templateParamsBytes, err := json.Marshal(
		passwordResetTemplateParams{PasswordResetUrl: resetUrl.String()},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	email := string(u.Email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Template:     &s.passwordResetTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

type passwordResetTemplateParams struct {
	PasswordResetUrl string `json:"passwordResetUrl"`
}
