package telegram

import (
	"crypto/subtle"
	"errors"
)

var (
	errMissingSecretToken = errors.New("missing secret token header")
	errInvalidSecretToken = errors.New("secret token mismatch")
)

// verifySecretToken checks the header Telegram echoes from setWebhook.
// Any update is accepted when no secret is configured.
func (h *handler) verifySecretToken(got string) error {
	if h.secretToken == "" {
		return nil
	}
	if got == "" {
		return errMissingSecretToken
	}
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) != 1 {
		return errInvalidSecretToken
	}
	return nil
}
