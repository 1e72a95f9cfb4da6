package notify

// sms.go holds the Twilio REST client.  Sending an SMS through Twilio is a
// single form-encoded POST to the account's Messages endpoint with basic
// auth, so the client is a thin wrapper over net/http.  One client is
// created at startup and shared for the process lifetime; credentials are
// validated before the server starts accepting requests.

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SMSSender dispatches a text message to a phone number.  Implementations
// must be safe for concurrent use.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

const twilioAPIBase = "https://api.twilio.com"

// TwilioClient implements SMSSender against the Twilio Messages API.
type TwilioClient struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	httpClient *http.Client
}

// NewTwilioClient builds a client for the given account.  from is the
// E.164 number messages are sent from.
func NewTwilioClient(accountSID, authToken, from string) *TwilioClient {
	return &TwilioClient{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    twilioAPIBase,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendSMS posts one message to the Twilio REST API.  Any non-2xx response
// is returned as an error with the status and a snippet of the body.
func (c *TwilioClient) SendSMS(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("twilio: status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}
