package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	apperrors "courier/errors"
)

func Test_Password_Hash_And_Compare(t *testing.T) {
	req := require.New(t)

	hash, err := HashPassword("Sup3r$ecretPhrase")
	req.NoError(err)
	req.Contains(hash, "$argon2id$")

	ok, err := ComparePassword("Sup3r$ecretPhrase", hash)
	req.NoError(err)
	req.True(ok)

	ok, err = ComparePassword("wrong password", hash)
	req.NoError(err)
	req.False(ok)
}

func Test_Hashing_Is_Salted(t *testing.T) {
	req := require.New(t)

	first, err := HashPassword("Sup3r$ecretPhrase")
	req.NoError(err)
	second, err := HashPassword("Sup3r$ecretPhrase")
	req.NoError(err)

	req.NotEqual(first, second)
}

func Test_ComparePassword_Rejects_Garbage_Hash(t *testing.T) {
	req := require.New(t)

	_, err := ComparePassword("whatever", "not-a-hash")
	req.Error(err)
}

func Test_Token_Roundtrip(t *testing.T) {
	req := require.New(t)
	userID := uuid.New()

	token, err := GenerateToken(userID, time.Hour)
	req.NoError(err)

	parsed, err := ValidateToken(token)
	req.NoError(err)
	req.Equal(userID, parsed)
}

func Test_Expired_Token_Is_Rejected(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken(uuid.New(), -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

func Test_Tampered_Token_Is_Rejected(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken(uuid.New(), time.Hour)
	req.NoError(err)

	_, err = ValidateToken(token + "x")
	req.Error(err)
}

func Test_ValidateRegister(t *testing.T) {
	valid := RegisterRequest{
		Username:    "alice_01",
		DisplayName: "Alice",
		Password:    "Sup3r$ecretPhrase",
	}

	tests := []struct {
		name    string
		mutate  func(r *RegisterRequest)
		wantErr bool
	}{
		{name: "valid request", mutate: func(r *RegisterRequest) {}},
		{name: "username too short", mutate: func(r *RegisterRequest) { r.Username = "al" }, wantErr: true},
		{name: "username with uppercase", mutate: func(r *RegisterRequest) { r.Username = "Alice" }, wantErr: true},
		{name: "username with spaces", mutate: func(r *RegisterRequest) { r.Username = "alice smith" }, wantErr: true},
		{name: "missing display name", mutate: func(r *RegisterRequest) { r.DisplayName = "" }, wantErr: true},
		{name: "password too short", mutate: func(r *RegisterRequest) { r.Password = "Ab1$" }, wantErr: true},
		{name: "password without digits", mutate: func(r *RegisterRequest) { r.Password = "Super$ecretPhrase" }, wantErr: true},
		{name: "password without specials", mutate: func(r *RegisterRequest) { r.Password = "Sup3rSecretPhrase" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			request := valid
			tt.mutate(&request)
			err := ValidateRegister(request)
			if tt.wantErr {
				req.Error(err)
				req.True(apperrors.HasCode(err, apperrors.CodeInvalidContent))
				return
			}
			req.NoError(err)
		})
	}
}
