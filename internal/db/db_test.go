package db

import (
	"testing"

	"bulk-be/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Run("Unreachable database returns error and pool", func(t *testing.T) {
		cfg := &config.Config{
			DBHost:     "127.0.0.1",
			DBUser:     "nobody",
			DBPassword: "nopass",
			DBName:     "nodb",
			// Nothing should be listening here.
			DBPort: "1",
		}

		database, err := Init(cfg)
		assert.Error(t, err)
		assert.NotNil(t, database)
		if database != nil {
			database.Close()
		}
	})
}
