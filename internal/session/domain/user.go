package domain

type User struct {
	ID              int
	Nickname        string
	Email           string
	ProfileImageURL *string
}

type Journey struct {
	ID int
}

type SocialProvider string

const (
	SocialProviderKakao SocialProvider = "KAKAO"
	SocialProviderApple SocialProvider = "APPLE"
)

func (p SocialProvider) IsValid() bool {
	return p == SocialProviderKakao || p == SocialProviderApple
}
