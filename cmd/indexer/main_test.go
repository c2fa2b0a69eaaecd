package main

import (
	"testing"

	"registry/config"
	"registry/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

func TestRequireSharedStorage(t *testing.T) {
	tests := []struct {
		name    string
		storage *config.StorageConfig
		wantErr bool
	}{
		{name: "unset", storage: nil, wantErr: true},
		{name: "memory", storage: &config.StorageConfig{Driver: constants.StorageDriverMemory}, wantErr: true},
		{name: "postgres", storage: &config.StorageConfig{Driver: constants.StorageDriverPostgres}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireSharedStorage(&config.Config{Storage: tt.storage})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
