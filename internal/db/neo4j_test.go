package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTimeout(t *testing.T) {
	err := classify(context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClassifyCancel(t *testing.T) {
	err := classify(context.Canceled)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClassifyQueryErrorUntouched(t *testing.T) {
	// un error de ejecución (bug del implementador) no es reintentable
	queryErr := errors.New("Neo.ClientError.Statement.SyntaxError")
	got := classify(queryErr)
	assert.Equal(t, queryErr, got)
	assert.NotErrorIs(t, got, ErrUnavailable)
}
