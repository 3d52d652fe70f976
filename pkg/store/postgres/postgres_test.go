package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDB_EmptyDSN(t *testing.T) {
	db, err := NewDB(context.Background(), Settings{})

	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestNewDB_InvalidDSN(t *testing.T) {
	db, err := NewDB(context.Background(), Settings{DSN: "postgres://%zz"})

	assert.Error(t, err)
	assert.Nil(t, db)
}
