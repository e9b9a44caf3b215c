package sms

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/NovaBeautyTech/salon-manager/internal/config"
)

type TwilioGateway struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioGateway(cfg *config.Config) *TwilioGateway {
	return &TwilioGateway{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		from: cfg.TwilioFromNumber,
	}
}

func (g *TwilioGateway) Send(to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(g.from)
	params.SetBody(body)

	resp, err := g.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio send: %w", err)
	}

	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}

func (g *TwilioGateway) Name() string {
	return "twilio"
}

var _ Gateway = (*TwilioGateway)(nil)
