package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := uuid.New()

	token, err := GenerateJWTToken(issuer, userID, time.Hour, "secret-key")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, userID, token.UserID)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok, "could not cast claims to RegisteredClaims")
	assert.Equal(t, issuer, claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   uuid.UUID
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", uuid.New(), time.Hour, "key"},
		{"nil user", "iss", uuid.Nil, time.Hour, "key"},
		{"zero duration", "iss", uuid.New(), 0, "key"},
		{"empty key", "iss", uuid.New(), time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidJWTParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := uuid.New()
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, userID, 5*time.Minute, key)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
	assert.Equal(t, genToken.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", uuid.New(), time.Hour, "correct-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", uuid.New(), -time.Second, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, err := GenerateJWTToken("real-issuer", uuid.New(), time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_SubjectNotUUID(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lower case scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer abc  ", "abc", false},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"too many parts", "Bearer a b", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
