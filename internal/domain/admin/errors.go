package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrShopkeeperNotFound = errors.New("shopkeeper not found")
	ErrReasonRequired     = errors.New("rejection reason is required")
)
