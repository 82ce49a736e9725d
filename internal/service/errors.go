package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrSystemCategoryImmutable = errors.New("system categories cannot be changed")
	ErrUnknownCategory         = errors.New("unknown category")

	ErrRecipeHasNoIngredients = errors.New("recipe has no ingredients")
)
