package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "app", Password: "secret", DBName: "eventflow"}
	assert.Equal(t, "postgres://app:secret@db:5432/eventflow?sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Equal(t, "postgres://app:secret@db:5432/eventflow?sslmode=require", cfg.DSN())
}
