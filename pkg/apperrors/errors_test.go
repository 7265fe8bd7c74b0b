package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromDB(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, ErrDuplicateKey},
		{"mysql duplicate entry", errors.New("Error 1062: Duplicate entry 'redshift' for key 'config_key'"), ErrDuplicateKey},
		{"embedded duplicate unique key", errors.New("duplicate unique key given: [redshift]"), ErrDuplicateKey},
		{"foreign key violation", errors.New("cannot add or update a child row - Foreign key violation"), ErrConstraintViolation},
		{"null column", errors.New("column name cannot be null"), ErrConstraintViolation},
		{"length overflow", errors.New("Error 1406: Data too long for column 'config_key'"), ErrConstraintViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDB(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestFromDB_PassesThroughUnclassified(t *testing.T) {
	in := errors.New("connection refused")
	assert.Equal(t, in, FromDB(in))
}
