package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioOTPSender dispatches codes as SMS via the Twilio REST API.
type TwilioOTPSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioOTPSender(accountSID, authToken, from string) *TwilioOTPSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioOTPSender{client: client, from: from}
}

func (s *TwilioOTPSender) SendOTP(ctx context.Context, phone string, code string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(phone)
	params.SetBody(fmt.Sprintf("Your Meal Link verification code is %s", code))

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("send otp sms: %w", err)
	}
	return nil
}

// LogOTPSender writes codes to the log instead of sending SMS. Used when
// Twilio credentials are not configured.
type LogOTPSender struct {
	Logger *logrus.Logger
}

func (s LogOTPSender) SendOTP(ctx context.Context, phone string, code string) error {
	s.Logger.WithFields(logrus.Fields{
		"phone": phone,
		"code":  code,
	}).Warn("otp not dispatched, logging instead")
	return nil
}
