package blindpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// webhookTimestampTolerance bounds how far a delivery's timestamp may
// drift from the verifier's clock before it is rejected as a replay.
const webhookTimestampTolerance = 5 * time.Minute

const webhookSecretPrefix = "whsec_"

// VerifyWebhookSignature checks the signature headers of a webhook
// delivery against the endpoint's signing secret, as returned by
// WebhookEndpointsService.GetSecret.
//
// Deliveries carry svix-id, svix-timestamp and svix-signature headers.
// The signed content is "<id>.<timestamp>.<payload>", authenticated
// with HMAC-SHA256 under the base64 portion of the whsec_ secret. The
// signature header may hold several space-separated "v1,<base64>"
// candidates; verification succeeds if any of them matches.
func VerifyWebhookSignature(secret string, headers http.Header, payload []byte) error {
	msgID := headers.Get("svix-id")
	msgTimestamp := headers.Get("svix-timestamp")
	msgSignature := headers.Get("svix-signature")
	if msgID == "" || msgTimestamp == "" || msgSignature == "" {
		return fmt.Errorf("missing webhook signature headers")
	}

	if err := verifyWebhookTimestamp(msgTimestamp); err != nil {
		return err
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, webhookSecretPrefix))
	if err != nil {
		return fmt.Errorf("decoding webhook secret: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.%s", msgID, msgTimestamp, payload)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	for _, candidate := range strings.Split(msgSignature, " ") {
		version, signature, found := strings.Cut(candidate, ",")
		if !found || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(signature), []byte(expected)) {
			return nil
		}
	}
	return fmt.Errorf("no matching webhook signature")
}

// verifyWebhookTimestamp rejects deliveries whose timestamp is outside
// the tolerance window, in either direction.
func verifyWebhookTimestamp(timestamp string) error {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing webhook timestamp: %w", err)
	}

	diff := time.Since(time.Unix(ts, 0))
	if diff < 0 {
		diff = -diff
	}
	if diff > webhookTimestampTolerance {
		return fmt.Errorf("webhook timestamp outside of tolerance")
	}
	return nil
}
