package notifications

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"
)

var client = &http.Client{Timeout: 5 * time.Second}

// SendWebhook POSTs the JSON payload to the subscriber's URL, signed with an
// HMAC-SHA256 of the body so the receiver can verify the sender. A slow
// receiver cannot block us past the client timeout.
func SendWebhook(url string, payload []byte, secret string) error {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Denarius-Webhook/1.0")
	req.Header.Set("X-Webhook-Signature", Sign(payload, secret))

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return fmt.Errorf("webhook receiver returned error: %d", resp.StatusCode)
}

// Sign computes the hex HMAC-SHA256 signature carried in the header.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
