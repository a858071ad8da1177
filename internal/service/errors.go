package service

import "errors"

var (
	ErrVersionIsNotSpecified     = errors.New("app version is not specified")
	ErrProductNameIsNotSpecified = errors.New("product name is not specified")

	ErrInvalidRoute  = errors.New("invalid route")
	ErrDuplicatePath = errors.New("path is served by more than one route")
	ErrBuildingChain = errors.New("error building plugin chain")
)
