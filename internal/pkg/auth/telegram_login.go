package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Telegram login errors
var (
	ErrLoginHashMismatch = errors.New("telegram login hash mismatch")
	ErrLoginExpired      = errors.New("telegram login data expired")
)

// LoginData is the payload produced by the Telegram Login Widget.
type LoginData struct {
	ID        string
	FirstName string
	LastName  string
	Username  string
	PhotoURL  string
	AuthDate  int64
	Hash      string
}

// maxLoginAge is how long a widget payload stays acceptable. Telegram signs
// auth_date, so replay beyond this window is rejected.
const maxLoginAge = 24 * time.Hour

// VerifyLogin checks the HMAC signature of Telegram Login Widget data.
// Per the Bot API docs the secret key is SHA256(bot token) and the signed
// string is the data-check-string: all received fields except hash, sorted
// alphabetically, joined as "key=value" lines.
func VerifyLogin(data LoginData, botToken string, now time.Time) error {
	if data.Hash == "" {
		return ErrLoginHashMismatch
	}

	if now.Sub(time.Unix(data.AuthDate, 0)) > maxLoginAge {
		return ErrLoginExpired
	}

	fields := map[string]string{
		"id":        data.ID,
		"auth_date": fmt.Sprintf("%d", data.AuthDate),
	}
	if data.FirstName != "" {
		fields["first_name"] = data.FirstName
	}
	if data.LastName != "" {
		fields["last_name"] = data.LastName
	}
	if data.Username != "" {
		fields["username"] = data.Username
	}
	if data.PhotoURL != "" {
		fields["photo_url"] = data.PhotoURL
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
	}
	checkString := strings.Join(lines, "\n")

	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(checkString))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(data.Hash)) {
		return ErrLoginHashMismatch
	}

	return nil
}
