package io

import (
	"errors"

	"github.com/ezrec/hackem/translate"
)

var f = translate.From

var (
	// Device errors
	ErrPixelRange = errors.New(f("pixel out of range"))
)
