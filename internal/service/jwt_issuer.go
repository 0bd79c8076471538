package service

import (
	"time"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/entity"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/utils"

	"github.com/google/uuid"
)

type JWTAccessIssuer struct {
	Manager *utils.JWTManager
}

func (j JWTAccessIssuer) IssueAccessToken(user entity.User, sessionID uuid.UUID) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, utils.ErrInvalidToken
	}
	return j.Manager.IssueAccessToken(user.ID.String(), string(user.Role), sessionID.String())
}
