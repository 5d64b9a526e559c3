package domain

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductSlugTaken    = errors.New("product slug already in use")
	ErrBundleNotFound      = errors.New("image bundle not found")
	ErrCollectionNotFound  = errors.New("collection not found")
	ErrCollectionSlugTaken = errors.New("collection slug already in use")
	ErrPromotionNotFound   = errors.New("promotion not found")
	ErrInquiryNotFound     = errors.New("inquiry not found")
	ErrAdminNotFound       = errors.New("admin user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidImage        = errors.New("source bytes are not a valid image")
	ErrInvalidCrop         = errors.New("crop rectangle outside source bounds")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrTokenRevoked        = errors.New("token revoked")
)
