package server

import "errors"

var (
	errInvalidMode = errors.New("mode must be hitl or yolo")
	errInvalidTier = errors.New("quality_priority must be high_quality, balanced, or budget")
	errInvalidBody = errors.New("invalid request body")
)
