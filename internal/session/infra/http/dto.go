package http

import (
	"encoding/json"

	internalhttp "github.com/klwxsrx/loopon-client/internal/pkg/http"
	"github.com/klwxsrx/loopon-client/internal/session/domain"
)

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type socialLoginIn struct {
	Provider    domain.SocialProvider `json:"provider"`
	AccessToken string                `json:"accessToken"`
}

type passwordResetCodeIn struct {
	Email string `json:"email"`
}

type passwordResetVerifyIn struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type passwordResetIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenOut accepts both "accessToken" and "token" keys.
type TokenOut struct {
	Token string
}

func (t *TokenOut) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	token, err := internalhttp.DecodeFieldWithFallback[string](fields, "accessToken", "token")
	if err != nil {
		return err
	}
	t.Token = token
	return nil
}

type UserOut struct {
	UserID          int     `json:"userId"`
	Nickname        string  `json:"nickname"`
	Email           string  `json:"email"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

func (u UserOut) toDomain() domain.User {
	return domain.User{
		ID:              u.UserID,
		Nickname:        u.Nickname,
		Email:           u.Email,
		ProfileImageURL: u.ProfileImageURL,
	}
}

// JourneyOut accepts both "journeyId" and "journey_id" keys.
type JourneyOut struct {
	JourneyID int
}

func (j *JourneyOut) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	id, err := internalhttp.DecodeFieldWithFallback[int](fields, "journeyId", "journey_id")
	if err != nil {
		return err
	}
	j.JourneyID = id
	return nil
}
