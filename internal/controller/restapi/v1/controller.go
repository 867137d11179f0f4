package v1

import (
	"github.com/BelugaDiver/foreman/internal/usecase"
	"github.com/BelugaDiver/foreman/pkg/logger"
)

type V1 struct {
	requests usecase.Request
	logger   logger.Interface
}
