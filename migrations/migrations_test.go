package migrations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelshare/schema/migration"
)

// Importing this package must register every checked-in migration.
func TestCheckedInMigrationsRegister(t *testing.T) {
	migrations := migration.Registered()
	require.NotEmpty(t, migrations)

	versions := make(map[string]string)
	for _, m := range migrations {
		versions[m.Version] = m.Name
	}
	assert.Equal(t, "rental_review_created_at_defaults", versions["20240321201700"])
}

func TestCheckedInMigrationsValidate(t *testing.T) {
	assert.NoError(t, migration.Validate())
}
