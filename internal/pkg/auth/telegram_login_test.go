package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotToken = "123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

// signLoginData produces the hash Telegram would attach to the payload.
func signLoginData(t *testing.T, data LoginData, botToken string) string {
	t.Helper()

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

	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyLogin_ValidSignature(t *testing.T) {
	now := time.Now()
	data := LoginData{
		ID:        "423781265",
		FirstName: "Aigerim",
		Username:  "aigerim_s",
		AuthDate:  now.Unix(),
	}
	data.Hash = signLoginData(t, data, testBotToken)

	assert.NoError(t, VerifyLogin(data, testBotToken, now))
}

func TestVerifyLogin_TamperedFieldRejected(t *testing.T) {
	now := time.Now()
	data := LoginData{
		ID:       "423781265",
		Username: "aigerim_s",
		AuthDate: now.Unix(),
	}
	data.Hash = signLoginData(t, data, testBotToken)

	data.ID = "999999999"
	err := VerifyLogin(data, testBotToken, now)
	assert.ErrorIs(t, err, ErrLoginHashMismatch)
}

func TestVerifyLogin_WrongBotTokenRejected(t *testing.T) {
	now := time.Now()
	data := LoginData{ID: "423781265", AuthDate: now.Unix()}
	data.Hash = signLoginData(t, data, "other:token")

	err := VerifyLogin(data, testBotToken, now)
	assert.ErrorIs(t, err, ErrLoginHashMismatch)
}

func TestVerifyLogin_MissingHashRejected(t *testing.T) {
	err := VerifyLogin(LoginData{ID: "1", AuthDate: time.Now().Unix()}, testBotToken, time.Now())
	assert.ErrorIs(t, err, ErrLoginHashMismatch)
}

func TestVerifyLogin_StalePayloadRejected(t *testing.T) {
	authTime := time.Now().Add(-25 * time.Hour)
	data := LoginData{ID: "423781265", AuthDate: authTime.Unix()}
	data.Hash = signLoginData(t, data, testBotToken)

	err := VerifyLogin(data, testBotToken, time.Now())
	assert.ErrorIs(t, err, ErrLoginExpired)
}

func TestVerifyLogin_OptionalFieldsCovered(t *testing.T) {
	now := time.Now()
	data := LoginData{
		ID:        "423781265",
		FirstName: "Aigerim",
		LastName:  "Seitkali",
		Username:  "aigerim_s",
		PhotoURL:  "https://t.me/i/userpic/320/x.jpg",
		AuthDate:  now.Unix(),
	}
	data.Hash = signLoginData(t, data, testBotToken)

	require.NoError(t, VerifyLogin(data, testBotToken, now))

	// Dropping a signed optional field must break verification.
	data.PhotoURL = ""
	assert.ErrorIs(t, VerifyLogin(data, testBotToken, now), ErrLoginHashMismatch)
}
