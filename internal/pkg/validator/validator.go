package validator

import (
	"fmt"
	"strings"

	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/api"
)

const (
	minNicknameLength = 2
	maxNicknameLength = 32
	maxTextLength     = 500
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidatePostMessage(req *api.PostMessageRequest) error {
	nickname := strings.TrimSpace(req.Nickname)
	if len([]rune(nickname)) < minNicknameLength {
		return fmt.Errorf("nickname must be at least %d characters", minNicknameLength)
	}

	if len([]rune(nickname)) > maxNicknameLength {
		return fmt.Errorf("nickname exceeds maximum length of %d characters", maxNicknameLength)
	}

	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	if len([]rune(req.Text)) > maxTextLength {
		return fmt.Errorf("text exceeds maximum length of %d characters", maxTextLength)
	}

	return nil
}
